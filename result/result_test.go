package result_test

import (
	"errors"
	"testing"

	. "github.com/npillmayer/bst/result"
)

func TestResultMatch(t *testing.T) {
	x := Ok(7) // infers type
	y := Err[int](errors.New("not ok"))

	var v int
	var e error

	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Errorf("expected Ok(7) not to match Err, got %v", e)
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

func TestResultGet(t *testing.T) {
	if v, err := Ok("fine").Get(); err != nil || v != "fine" {
		t.Errorf("expected Ok(fine).Get() to be (fine, nil), is (%q, %v)", v, err)
	}
	boom := errors.New("boom")
	v, err := Err[string](boom).Get()
	if !errors.Is(err, boom) || v != "" {
		t.Errorf("expected Err(boom).Get() to be (\"\", boom), is (%q, %v)", v, err)
	}
}

func TestResultMap(t *testing.T) {
	half := func(n int) float64 { return float64(n) / 2 }
	if v, err := Map(half, Ok(3)).Get(); err != nil || v != 1.5 {
		t.Errorf("expected Map(half, Ok 3) to be 1.5, is %v (%v)", v, err)
	}
	boom := errors.New("boom")
	if _, err := Map(half, Err[int](boom)).Get(); !errors.Is(err, boom) {
		t.Errorf("expected Map(half, Err) to pass the error on, is %v", err)
	}
}
