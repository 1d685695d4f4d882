package frontkit

import (
	"errors"
	"testing"
)

func TestResidualDetector(t *testing.T) {
	d, err := NewResidualDetector("vi", "en")
	if err != nil {
		t.Fatalf("NewResidualDetector failed: %v", err)
	}

	lines := []string{
		"# PRIMARY GOAL\n",
		"Always verify the project works normally after every cleanup.\n",
		"Không được tự ý thay đổi giao diện người dùng khi chưa hỏi ý kiến.\n",
		"- ok\n",
	}

	residual := d.Residual(lines)
	if len(residual) != 1 {
		t.Fatalf("expected 1 residual line, got %+v", residual)
	}
	if residual[0].Number != 3 {
		t.Errorf("residual line number = %d, want 3", residual[0].Number)
	}
}

func TestNewResidualDetector_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		source string
		target string
	}{
		{"unknown source", "xx", "en"},
		{"unknown target", "vi", "xx"},
		{"same language", "vi_VN", "vi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewResidualDetector(tt.source, tt.target)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
		})
	}
}
