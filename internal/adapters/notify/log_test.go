package notify

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"

	"diario/internal/ports"
)

func TestLog_Notify(t *testing.T) {
	tests := []struct {
		name      string
		n         ports.Notification
		wantLevel string
	}{
		{
			name:      "success",
			n:         ports.Notification{Kind: ports.NotificationSuccess, Title: "Saved", Description: "Your changes were saved"},
			wantLevel: `"level":"info"`,
		},
		{
			name:      "error",
			n:         ports.Notification{Kind: ports.NotificationError, Title: "Error", Description: "Could not save the page. Try again later."},
			wantLevel: `"level":"warn"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLog(zerolog.New(&buf)).Notify(tt.n)

			out := buf.String()
			for _, want := range []string{tt.wantLevel, tt.n.Title, tt.n.Description, tt.n.Kind.String()} {
				if !bytes.Contains([]byte(out), []byte(want)) {
					t.Errorf("expected %q in %s", want, out)
				}
			}
		})
	}
}
