package rangex

import (
	"testing"

	mdwerror "github.com/msto63/gregor/foundation/core/error"
)

// num is a minimal Comparable used to exercise Range without pulling in datetime.
type num int

func (n num) Compare(o num) int {
	switch {
	case n < o:
		return -1
	case n > o:
		return 1
	}
	return 0
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		start   num
		end     num
		wantErr bool
	}{
		{"ordered", 1, 5, false},
		{"single point", 3, 3, false},
		{"reversed", 5, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
					t.Errorf("New() error code = %v, want %v", mdwerror.GetCode(err), mdwerror.CodeInvalidInput)
				}
				return
			}
			if r.Start() != tt.start || r.End() != tt.end {
				t.Errorf("New() = [%v, %v], want [%v, %v]", r.Start(), r.End(), tt.start, tt.end)
			}
		})
	}
}

func TestRange_Contains(t *testing.T) {
	r := Must[num](2, 4)
	tests := []struct {
		v    num
		want bool
	}{
		{1, false},
		{2, true},
		{3, true},
		{4, true},
		{5, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.v); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestRange_OverlapsAndIntersect(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Range[num]
		overlaps  bool
		intersect Range[num]
	}{
		{"disjoint", Must[num](1, 2), Must[num](3, 4), false, Range[num]{}},
		{"touching", Must[num](1, 3), Must[num](3, 5), true, Must[num](3, 3)},
		{"partial", Must[num](1, 4), Must[num](2, 6), true, Must[num](2, 4)},
		{"nested", Must[num](1, 10), Must[num](3, 4), true, Must[num](3, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.overlaps {
				t.Errorf("Overlaps() = %v, want %v", got, tt.overlaps)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.overlaps {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.overlaps)
			}
			got, ok := tt.a.Intersect(tt.b)
			if ok != tt.overlaps {
				t.Fatalf("Intersect() ok = %v, want %v", ok, tt.overlaps)
			}
			if got != tt.intersect {
				t.Errorf("Intersect() = %v, want %v", got, tt.intersect)
			}
		})
	}
}

func TestRange_Encloses(t *testing.T) {
	outer := Must[num](1, 10)
	if !outer.Encloses(Must[num](1, 10)) {
		t.Error("Encloses(self) = false, want true")
	}
	if !outer.Encloses(Must[num](4, 6)) {
		t.Error("Encloses(inner) = false, want true")
	}
	if outer.Encloses(Must[num](0, 6)) {
		t.Error("Encloses(overhanging) = true, want false")
	}
}

func TestRange_String(t *testing.T) {
	if got, want := Must[num](1, 2).String(), "1 - 2"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
