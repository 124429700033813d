package instantevent

import "testing"

func TestCalcPageWindow(t *testing.T) {
	tests := []struct {
		name              string
		count, page, size int
		want              PageWindow
	}{
		{
			name:  "FirstPage",
			count: 25, page: 1, size: 10,
			want: PageWindow{TotalElements: 24, TotalPages: 3, StartAt: 24},
		},
		{
			name:  "MiddlePage",
			count: 25, page: 2, size: 10,
			want: PageWindow{TotalElements: 24, TotalPages: 3, StartAt: 14},
		},
		{
			name:  "LastPartialPage",
			count: 25, page: 3, size: 10,
			want: PageWindow{TotalElements: 24, TotalPages: 3, StartAt: 4},
		},
		{
			name:  "PastTheEnd",
			count: 25, page: 4, size: 10,
			want: PageWindow{TotalElements: 24, TotalPages: 3, Empty: true},
		},
		{
			name:  "EmptyStore",
			count: 0, page: 1, size: 10,
			want: PageWindow{TotalElements: 0, TotalPages: 0, StartAt: 0},
		},
		{
			name:  "ExactMultiple",
			count: 21, page: 2, size: 10,
			want: PageWindow{TotalElements: 20, TotalPages: 2, StartAt: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalcPageWindow(tt.count, tt.page, tt.size); got != tt.want {
				t.Errorf("CalcPageWindow(%d, %d, %d) = %+v, want %+v", tt.count, tt.page, tt.size, got, tt.want)
			}
		})
	}
}
