package result_test

import (
	"errors"
	"testing"

	. "github.com/npillmayer/pmatch/result"
)

func TestResultSimple(t *testing.T) {
	x := Ok(7) // infers type
	y := Err[int](errors.New("not ok"))

	var v int
	var e error

	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err")
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

func TestErrWithNil(t *testing.T) {
	var e error
	switch m := Err[int](nil).Match(); m {
	case m.Err(&e):
	}
	if !errors.Is(e, ErrUnknown) {
		t.Errorf("expected Err(nil) to carry ErrUnknown, is %v", e)
	}
}

func TestCatchValue(t *testing.T) {
	r := Catch(func() (bool, error) {
		return true, nil
	})
	var ok bool
	switch m := r.Match(); m {
	case m.Ok(&ok):
	case m.Err(nil):
		t.Fatal("expected Ok, got Err")
	}
	if !ok {
		t.Error("expected Catch to return Ok(true), didn't")
	}
}

func TestCatchError(t *testing.T) {
	boom := errors.New("boom")
	r := Catch(func() (bool, error) {
		return true, boom
	})
	if r.IsOk() {
		t.Fatal("expected Catch to return Err for a returned error, didn't")
	}
	var e error
	switch m := r.Match(); m {
	case m.Err(&e):
	}
	if !errors.Is(e, boom) {
		t.Errorf("expected error to be 'boom', is %v", e)
	}
}

func TestCatchPanic(t *testing.T) {
	r := Catch(func() (int, error) {
		var m map[string]int
		m["x"] = 1 // assignment to nil map
		return 1, nil
	})
	var e error
	switch m := r.Match(); m {
	case m.Ok(nil):
		t.Fatal("expected Err, got Ok")
	case m.Err(&e):
	}
	var perr *PanicError
	if !errors.As(e, &perr) {
		t.Fatalf("expected a *PanicError, is %T", e)
	}
	t.Logf("recovered: %v", perr)
}
