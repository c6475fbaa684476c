package tidal

import "testing"

func TestCoverURL(t *testing.T) {
	tests := []struct {
		id     string
		width  int
		height int
		want   string
	}{
		{
			id:    "abcd-1234",
			width: 320, height: 320,
			want: "https://resources.tidal.com/images/abcd/1234/320x320.jpg",
		},
		{
			id:    "aaaa-bbbb-cccc-dddd",
			width: 1280, height: 1280,
			want: "https://resources.tidal.com/images/aaaa/bbbb/cccc/dddd/1280x1280.jpg",
		},
		{
			id:    "nohyphens",
			width: 80, height: 80,
			want: "https://resources.tidal.com/images/nohyphens/80x80.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			cover := NewCover(tt.id)
			if got := cover.URL(tt.width, tt.height); got != tt.want {
				t.Errorf("URL(%d, %d) = %q, want %q", tt.width, tt.height, got, tt.want)
			}
		})
	}
}
