package pwnable_test

import (
	"testing"

	"github.com/pwnableharness/pwnableharness/internal/logging"
	"github.com/pwnableharness/pwnableharness/pwnable"
)

func TestInstallReaperDoesNotPanic(t *testing.T) {
	pwnable.InstallReaper()
}

func TestInstallTerminateHandlerDoesNotBlock(t *testing.T) {
	log := logging.New()
	pwnable.InstallTerminateHandler(log)
}
