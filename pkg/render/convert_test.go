package render

import (
	"os/exec"
	"testing"

	"github.com/mkessel/cumulus/pkg/errors"
)

func TestConvertWithoutLibrsvg(t *testing.T) {
	if _, err := exec.LookPath("rsvg-convert"); err == nil {
		t.Skip("rsvg-convert is installed")
	}

	_, err := ToPDF([]byte("<svg/>"))
	if err == nil {
		t.Fatal("ToPDF should fail without rsvg-convert")
	}
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeUnsupported)
	}
}
