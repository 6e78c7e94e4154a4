// Copyright (c) 2025 Neomantra Corp

package sink_test

import (
	"bytes"
	"strings"

	json "github.com/segmentio/encoding/json"

	"github.com/nimblemarkets-labs/itch-lob-go/book"
	"github.com/nimblemarkets-labs/itch-lob-go/internal/sink"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JSONLSink", func() {
	It("writes one JSON object per line", func() {
		var buf bytes.Buffer
		s := sink.NewJSONLSink(&buf)

		Expect(s.Accept(book.Snapshot{TimestampNs: 1})).To(Succeed())
		Expect(s.Accept(book.Snapshot{TimestampNs: 2})).To(Succeed())
		Expect(s.Flush()).To(Succeed())

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		Expect(lines).To(HaveLen(2))

		var first book.Snapshot
		Expect(json.Unmarshal([]byte(lines[0]), &first)).To(Succeed())
		Expect(first.TimestampNs).To(Equal(uint64(1)))
	})
})
