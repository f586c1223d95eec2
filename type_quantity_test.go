package finans

import "testing"

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in      string
		want    Quantity
		wantErr bool
	}{
		{in: "1", want: Q(1)},
		{in: " 2.5 ", want: Q(2.5)},
		{in: "0,001", want: Q(0.001)},
		{in: "-3", want: Q(-3)},
		{in: "0", want: Q(0)},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "1.2.3", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseQuantity(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseQuantity(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseQuantity(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
