package server_test

import (
	"net/http"

	"jekomo/internal/http/server"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("HTTPServer", func() {
	It("should stop with ErrServerClosed after shutdown", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), "0")

		errChan := srv.Run()
		Expect(srv.Shutdown()).To(Succeed())

		Eventually(errChan).Should(Receive(MatchError(http.ErrServerClosed)))
	})
})
