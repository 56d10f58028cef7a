package rest

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewServer(t *testing.T) {
	// When: the HTTP server is built
	srv := newServer("3030", http.NotFoundHandler())

	// Then: reads are bounded but a long search is never cut off mid-reply
	assert.Equal(t, ":3030", srv.Addr)
	assert.Equal(t, 10*time.Second, srv.ReadTimeout)
	assert.Equal(t, 30*time.Second, srv.IdleTimeout)
	assert.Zero(t, srv.WriteTimeout)
}
