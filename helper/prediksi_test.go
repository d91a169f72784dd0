package helper

import (
	"math"
	"testing"
)

func TestJamKeMenit(t *testing.T) {
	kasus := []struct {
		jam string
		mau float64
	}{
		{"07:30:00", 450},
		{"07:30", 450},
		{"00:00:00", 0},
		{"23:59", 1439},
		{"ngawur", 0},
	}
	for _, k := range kasus {
		if dapat := JamKeMenit(k.jam); dapat != k.mau {
			t.Errorf("JamKeMenit(%q) = %v, mau %v", k.jam, dapat, k.mau)
		}
	}
}

func TestMenitKeJam(t *testing.T) {
	if dapat := MenitKeJam(450); dapat != "07:30" {
		t.Errorf("MenitKeJam(450) = %q, mau 07:30", dapat)
	}
	if dapat := MenitKeJam(0); dapat != "00:00" {
		t.Errorf("MenitKeJam(0) = %q, mau 00:00", dapat)
	}
}

func TestRataDanDeviasi(t *testing.T) {
	rata, deviasi := RataDanDeviasi([]float64{440, 450, 460})
	if rata != 450 {
		t.Errorf("rata = %v, mau 450", rata)
	}
	if math.Abs(deviasi-8.165) > 0.01 {
		t.Errorf("deviasi = %v, mau sekitar 8.165", deviasi)
	}

	rata, deviasi = RataDanDeviasi(nil)
	if rata != 0 || deviasi != 0 {
		t.Errorf("tanpa data harus 0,0; dapat %v,%v", rata, deviasi)
	}
}
