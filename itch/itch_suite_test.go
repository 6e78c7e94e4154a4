// Copyright (c) 2025 Neomantra Corp

package itch_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
)

func TestItch(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "itch suite")
}
