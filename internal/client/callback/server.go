package callback

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/postpilot/postpilot/internal/logging"
)

// Paths served by the loopback listener. The provider redirects the browser
// to BridgePath; the interstitial page forwards the URL fragment to DonePath
// as query parameters, because fragments never reach a server on their own.
const (
	BridgePath = "/oauth/bridge"
	DonePath   = "/oauth/bridge/done"
)

// ErrClosed is returned by Wait when the server shuts down before a redirect
// arrives.
var ErrClosed = errors.New("callback server closed")

// interstitial re-emits the fragment of the current location as query
// parameters of a follow-up request. Everything else about the redirect URL
// (including any existing query, such as linkedin=ok) is carried along.
const interstitial = `<!DOCTYPE html>
<html>
<head><title>PostPilot</title></head>
<body>
<p>Completing sign-in&hellip;</p>
<script>
(function () {
  var hash = window.location.hash.replace(/^#/, "");
  var query = window.location.search.replace(/^\?/, "");
  var joined = query && hash ? query + "&" + hash : query + hash;
  window.location.replace("` + DonePath + `" + (joined ? "?" + joined : ""));
})();
</script>
</body>
</html>
`

// Server is a one-shot loopback HTTP listener that captures a single OAuth
// redirect. The browser lands on BridgePath with the token in the URL
// fragment; the served page bounces it to DonePath where the original
// fragment-carrying URL is reconstructed and handed to Wait.
type Server struct {
	log      logging.Logger
	listener net.Listener
	srv      *http.Server

	once   sync.Once
	result chan string
}

// NewServer binds the loopback address immediately so that the redirect URI
// is known before the provider flow starts. Serve must be called to begin
// accepting.
func NewServer(addr string, log logging.Logger) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to bind callback listener: %w", err)
	}

	s := &Server{
		log:      log,
		listener: ln,
		result:   make(chan string, 1),
	}

	r := chi.NewRouter()
	r.Get(BridgePath, s.handleBridge)
	r.Get(DonePath, s.handleDone)

	s.srv = &http.Server{
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s, nil
}

// URL returns the address the provider should redirect back to.
func (s *Server) URL() string {
	return "http://" + s.listener.Addr().String() + BridgePath
}

// Serve accepts connections until Shutdown. It always returns a non-nil
// error; http.ErrServerClosed after a clean shutdown.
func (s *Server) Serve() error {
	return s.srv.Serve(s.listener)
}

func (s *Server) handleBridge(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(interstitial))
}

// handleDone receives the forwarded fragment as query parameters and
// reconstructs the redirect URL the browser originally landed on, with the
// token back in the fragment. Only the first redirect wins.
func (s *Server) handleDone(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	token := q.Get("token")
	q.Del("token")

	u := url.URL{
		Scheme:   "http",
		Host:     r.Host,
		Path:     BridgePath,
		RawQuery: q.Encode(),
	}
	if token != "" {
		u.Fragment = "token=" + token
	}

	s.once.Do(func() {
		s.result <- u.String()
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte("<html><body><p>Sign-in complete. You can close this window and return to the terminal.</p></body></html>"))
}

// Wait blocks until a redirect has been captured, the context is cancelled,
// or the server is closed.
func (s *Server) Wait(ctx context.Context) (string, error) {
	select {
	case raw, ok := <-s.result:
		if !ok {
			return "", ErrClosed
		}
		return raw, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Shutdown stops the listener and unblocks any pending Wait.
func (s *Server) Shutdown(ctx context.Context) error {
	s.once.Do(func() { close(s.result) })
	return s.srv.Shutdown(ctx)
}
