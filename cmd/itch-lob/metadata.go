// Copyright (c) 2025 Neomantra Corp

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nimblemarkets-labs/itch-lob-go/bytesource"
	"github.com/nimblemarkets-labs/itch-lob-go/frame"
	"github.com/nimblemarkets-labs/itch-lob-go/itch"
)

// symbolLocate is one discovered (symbol, locate) pair from a capture's
// StockDirectory records.
type symbolLocate struct {
	Symbol string `json:"symbol"`
	Locate uint16 `json:"locate"`
}

var metadataCmd = &cobra.Command{
	Use:   "metadata file",
	Short: "Scans a capture's StockDirectory records and prints the discovered (symbol, locate) pairs",
	Long:  "Scans a capture's StockDirectory records and prints every discovered (symbol, locate) pair as JSON, without running the order book engine. Useful for finding the right --symbol before a full replay.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := bytesource.Open(args[0])
		if err != nil {
			exitCode = 1
			return err
		}
		defer src.Close()

		var pairs []symbolLocate
		visitor := &metadataVisitor{onDirectory: func(msg *itch.StockDirectoryMsg) {
			pairs = append(pairs, symbolLocate{Symbol: msg.Stock.String(), Locate: msg.StockLocate})
		}}

		dec := frame.NewDecoder(src.Bytes())
		for dec.Next() {
			if err := itch.Visit(dec.Body(), visitor); err != nil {
				exitCode = 2
				return fmt.Errorf("offset %d: %w", dec.Offset(), err)
			}
		}
		if dec.Err() != nil {
			exitCode = 2
			return fmt.Errorf("offset %d: %w", dec.Offset(), dec.Err())
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(pairs)
	},
}

// metadataVisitor only cares about StockDirectory; everything else falls
// through to NullVisitor.
type metadataVisitor struct {
	itch.NullVisitor
	onDirectory func(*itch.StockDirectoryMsg)
}

func (v *metadataVisitor) OnStockDirectory(msg *itch.StockDirectoryMsg) error {
	v.onDirectory(msg)
	return nil
}
