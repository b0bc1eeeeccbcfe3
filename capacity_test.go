package semchunk

import "testing"

func TestNewCapacity(t *testing.T) {
	c := NewCapacity(100)
	if c.Desired() != 100 || c.Max() != 100 {
		t.Fatalf("NewCapacity(100) = {%d, %d}, want {100, 100}", c.Desired(), c.Max())
	}
}

func TestNewCapacityRange(t *testing.T) {
	tests := []struct {
		name        string
		a, b        int
		wantDesired int
		wantMax     int
	}{
		{"ordinary range", 100, 200, 100, 199},
		{"single-element range", 100, 101, 100, 100},
		{"empty range collapses", 100, 100, 100, 100},
		{"inverted range collapses", 100, 50, 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCapacityRange(tt.a, tt.b)
			if c.Desired() != tt.wantDesired || c.Max() != tt.wantMax {
				t.Errorf("NewCapacityRange(%d, %d) = {%d, %d}, want {%d, %d}",
					tt.a, tt.b, c.Desired(), c.Max(), tt.wantDesired, tt.wantMax)
			}
		})
	}
}

func TestNewCapacityBounds(t *testing.T) {
	if _, err := NewCapacityBounds(200, 100); err != ErrInvalidCapacity {
		t.Fatalf("NewCapacityBounds(200, 100) error = %v, want ErrInvalidCapacity", err)
	}
	c, err := NewCapacityBounds(100, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Desired() != 100 || c.Max() != 200 {
		t.Errorf("got {%d, %d}, want {100, 200}", c.Desired(), c.Max())
	}
}

func TestCapacityClassify(t *testing.T) {
	c := NewCapacityRange(100, 200)
	tests := []struct {
		size int
		want Classification
	}{
		{50, TooSmall},
		{99, TooSmall},
		{100, Fits},
		{150, Fits},
		{199, Fits},
		{200, TooLarge},
		{500, TooLarge},
	}
	for _, tt := range tests {
		if got := c.Classify(tt.size); got != tt.want {
			t.Errorf("Classify(%d) = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestClassificationString(t *testing.T) {
	if TooSmall.String() != "TooSmall" {
		t.Errorf("TooSmall.String() = %q", TooSmall.String())
	}
	if Fits.String() != "Fits" {
		t.Errorf("Fits.String() = %q", Fits.String())
	}
	if TooLarge.String() != "TooLarge" {
		t.Errorf("TooLarge.String() = %q", TooLarge.String())
	}
}
