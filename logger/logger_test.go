package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInit(t *testing.T) {
	prevLevel, prevFormatter := Log.GetLevel(), Log.Formatter
	t.Cleanup(func() {
		Log.SetLevel(prevLevel)
		Log.SetFormatter(prevFormatter)
	})

	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"", logrus.DebugLevel},
		{"nonsense", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
	}
	for _, tt := range tests {
		Init(tt.level, false)
		if got := Log.GetLevel(); got != tt.want {
			t.Fatalf("Init(%q): level = %v, want %v", tt.level, got, tt.want)
		}
	}

	Init("", true)
	if _, ok := Log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Fatalf("formatter = %T, want JSON", Log.Formatter)
	}
}
