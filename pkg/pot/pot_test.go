package pot

import "testing"

func TestNext(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{-3, 1}, {0, 1}, {1, 1}, {2, 2}, {3, 4}, {4, 4}, {5, 8},
		{255, 256}, {256, 256}, {257, 512}, {1000, 1024},
	}
	for _, c := range cases {
		if got := Next(c.in); got != c.want {
			t.Errorf("Next(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestNextIsSmallest(t *testing.T) {
	for x := 1; x <= 4096; x++ {
		p := Next(x)
		if !Is(p) {
			t.Fatalf("Next(%d) = %d is not a power of two", x, p)
		}
		if p < x {
			t.Fatalf("Next(%d) = %d is less than x", x, p)
		}
		if p > 1 && p/2 >= x {
			t.Fatalf("Next(%d) = %d is not the smallest", x, p)
		}
	}
}

func TestNextUnsigned(t *testing.T) {
	if got := Next(uint16(300)); got != 512 {
		t.Errorf("Next(uint16(300)) = %d, want 512", got)
	}
}

func TestIs(t *testing.T) {
	for _, x := range []int64{1, 2, 4, 1 << 20, 1 << 40} {
		if !Is(x) {
			t.Errorf("Is(%d) = false", x)
		}
	}
	for _, x := range []int64{-4, 0, 3, 6, 12, 1<<20 + 1} {
		if Is(x) {
			t.Errorf("Is(%d) = true", x)
		}
	}
}

func TestAlign(t *testing.T) {
	cases := []struct {
		n, a, want int
	}{
		{0, 4, 0}, {1, 4, 4}, {4, 4, 4}, {5, 4, 8}, {7, 3, 9},
	}
	for _, c := range cases {
		if got := Align(c.n, c.a); got != c.want {
			t.Errorf("Align(%d, %d) = %d, want %d", c.n, c.a, got, c.want)
		}
	}
}

func TestNextOverflow(t *testing.T) {
	if got := Next(uint8(200)); got != 0 {
		t.Errorf("Next(uint8(200)) = %d, want 0", got)
	}
	if got := Next(uint8(128)); got != 128 {
		t.Errorf("Next(uint8(128)) = %d, want 128", got)
	}
	if got := Next(int8(100)); got != 0 {
		t.Errorf("Next(int8(100)) = %d, want 0", got)
	}
	if got := Next(1<<62 + 1); got != 0 {
		t.Errorf("Next(1<<62+1) = %d, want 0", got)
	}
	if got := Next(int64(1) << 62); got != 1<<62 {
		t.Errorf("Next(1<<62) = %d, want 1<<62", got)
	}
}
