package logging_test

import (
	"testing"

	"github.com/edgard/autocorrect/internal/logging"
)

func TestSetupAcceptsTextAndJSON(t *testing.T) {
	t.Parallel()

	if err := logging.Setup(false, false); err != nil {
		t.Errorf("Setup(text) error: %v", err)
	}

	if err := logging.Setup(true, true); err != nil {
		t.Errorf("Setup(debug, json) error: %v", err)
	}
}
