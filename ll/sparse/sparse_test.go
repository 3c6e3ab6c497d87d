package sparse

import "testing"

func TestInsertAndValue(t *testing.T) {
	M := NewIntMatrix(5, 5, DefaultNullValue)
	if _, ok := M.Insert(2, 3, 4711); !ok {
		t.Fatalf("expected insert into empty position to succeed")
	}
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) = 4711, is %d", v)
	}
	if v := M.Value(3, 2); v != M.NullValue() {
		t.Errorf("expected M(3,2) to be null, is %d", v)
	}
}

func TestInsertRejectsOccupied(t *testing.T) {
	M := NewIntMatrix(3, 3, -1)
	M.Insert(1, 1, 7)
	prev, ok := M.Insert(1, 1, 8)
	if ok {
		t.Errorf("expected second insert at (1,1) to be rejected")
	}
	if prev != 7 {
		t.Errorf("expected rejected insert to report 7, got %d", prev)
	}
	if M.Value(1, 1) != 7 || M.ValueCount() != 1 {
		t.Errorf("matrix changed by rejected insert: M(1,1)=%d, count=%d", M.Value(1, 1), M.ValueCount())
	}
}

func TestEachIsRowMajor(t *testing.T) {
	M := NewIntMatrix(4, 4, -1)
	M.Insert(3, 0, 30)
	M.Insert(0, 2, 2)
	M.Insert(1, 1, 11)
	M.Insert(0, 1, 1)
	var got []int32
	M.Each(func(i, j int, v int32) {
		got = append(got, v)
	})
	expected := []int32{1, 2, 11, 30}
	if len(got) != len(expected) {
		t.Fatalf("expected %d values, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("expected value #%d to be %d, is %d", i, expected[i], got[i])
		}
	}
}

func TestIndexOutOfRange(t *testing.T) {
	M := NewIntMatrix(2, 2, -1)
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected insert at (2,0) to panic")
		}
	}()
	M.Insert(2, 0, 1)
}
