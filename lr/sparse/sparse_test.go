package sparse

import "testing"

func TestSetAndGet(t *testing.T) {
	M := NewIntMatrix(10, 10, DefaultNullValue)
	M.Set(2, 3, 4711)
	M.Set(0, 0, 1)
	M.Set(9, 9, 99)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) to be 4711, is %d", v)
	}
	if v := M.Value(5, 5); v != M.NullValue() {
		t.Errorf("expected M(5,5) to be null, is %d", v)
	}
	if M.ValueCount() != 3 {
		t.Errorf("expected 3 values, have %d", M.ValueCount())
	}
	M.Set(2, 3, 42)
	if v := M.Value(2, 3); v != 42 || M.ValueCount() != 3 {
		t.Errorf("expected M(2,3) to be overwritten with 42, is %d", v)
	}
}

func TestAddSecondValue(t *testing.T) {
	M := NewIntMatrix(4, 4, -100)
	M.Add(1, 1, 7)
	M.Add(1, 1, 8)
	a, b := M.Values(1, 1)
	if a != 7 || b != 8 {
		t.Errorf("expected values (7,8), have (%d,%d)", a, b)
	}
	M.Add(1, 1, 9)
	if _, b = M.Values(1, 1); b != 9 {
		t.Errorf("expected second value to be overwritten with 9, is %d", b)
	}
	if _, b = M.Values(3, 3); b != -100 {
		t.Errorf("expected null value for empty position, have %d", b)
	}
}

func TestRowMajorOrder(t *testing.T) {
	M := NewIntMatrix(3, 3, DefaultNullValue)
	M.Set(2, 0, 3)
	M.Set(0, 2, 1)
	M.Set(1, 1, 2)
	var seen []int32
	M.Each(func(i, j int, a, b int32) {
		seen = append(seen, a)
	})
	for k, v := range []int32{1, 2, 3} {
		if seen[k] != v {
			t.Fatalf("expected row-major order 1,2,3, have %v", seen)
		}
	}
}

func TestOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for index out of range")
		}
	}()
	M := NewIntMatrix(2, 2, DefaultNullValue)
	M.Set(2, 0, 1)
}
