// Copyright (c) 2025 Neomantra Corp

package broadcast_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/nimblemarkets-labs/itch-lob-go/book"
	"github.com/nimblemarkets-labs/itch-lob-go/broadcast"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var hubTestUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

var _ = Describe("Hub", func() {
	It("delivers a snapshot to a connected subscriber", func() {
		hub := broadcast.NewHub(broadcast.Config{Symbol: "AAPL", Depth: 1})

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			conn, err := hubTestUpgrader.Upgrade(w, r, nil)
			Expect(err).NotTo(HaveOccurred())
			hub.Register(conn)
		}))
		defer server.Close()

		wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
		clientConn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		Expect(err).NotTo(HaveOccurred())
		defer clientConn.Close()

		Eventually(hub.SubscriberCount).Should(Equal(1))

		Expect(hub.Accept(book.Snapshot{
			TimestampNs: 42,
			Bids:        []book.LevelView{{Price: 1000000, Quantity: 10, OrderCount: 1}},
		})).To(Succeed())

		clientConn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := clientConn.ReadMessage()
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(`"symbol":"AAPL"`))
		Expect(string(data)).To(ContainSubstring(`"timestamp_ns":42`))
	})

	It("does not backfill a subscriber that joins mid-stream", func() {
		hub := broadcast.NewHub(broadcast.Config{Symbol: "AAPL", Depth: 1})
		Expect(hub.Accept(book.Snapshot{TimestampNs: 1})).To(Succeed())

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			conn, err := hubTestUpgrader.Upgrade(w, r, nil)
			Expect(err).NotTo(HaveOccurred())
			hub.Register(conn)
		}))
		defer server.Close()

		wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
		clientConn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		Expect(err).NotTo(HaveOccurred())
		defer clientConn.Close()

		Eventually(hub.SubscriberCount).Should(Equal(1))

		Expect(hub.Accept(book.Snapshot{TimestampNs: 2})).To(Succeed())

		clientConn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := clientConn.ReadMessage()
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(`"timestamp_ns":2`))
	})
})
