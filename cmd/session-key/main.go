// Package main provides a one-shot utility for session key generation.
//
// It emits the asymmetric keypair used to verify admin session tokens.
package main

import (
	"os"

	"github.com/chekout/admin/internal/platform/config"
	"github.com/chekout/admin/internal/tools/sessionkey"
)

func main() {
	if err := sessionkey.Run(os.Stdout, nil); err != nil {
		config.Exitf("generate session key: %v", err)
	}
}
