package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/embedkit/tweetcard/pkg/buildinfo"
	"github.com/embedkit/tweetcard/pkg/errors"
	"github.com/embedkit/tweetcard/pkg/render"
	"github.com/embedkit/tweetcard/pkg/twitter"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

type tweetResponse struct {
	Success bool           `json:"success"`
	Data    *twitter.Tweet `json:"data"`
}

type errorResponse struct {
	Success    bool        `json:"success"`
	Error      errors.Code `json:"error"`
	Message    string      `json:"message"`
	StatusCode int         `json:"statusCode,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=60")
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"service":   "tweetcard",
		"version":   buildinfo.Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "tweetcard",
		"version": buildinfo.Version,
		"routes": map[string]string{
			"health":    "/health",
			"tweetJson": "/api/tweet?url=<tweet-url>",
			"tweetHtml": "/tweet?url=<tweet-url>",
			"tweetSvg":  "/tweet-svg?url=<tweet-url>",
		},
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"error":     "Not Found",
		"message":   "Route " + r.URL.Path + " not found",
		"requestId": RequestID(r.Context()),
		"availableRoutes": map[string]string{
			"health":    "/health",
			"tweetJson": "/api/tweet?url=<tweet-url>",
			"tweetHtml": "/tweet?url=<tweet-url>",
			"tweetSvg":  "/tweet-svg?url=<tweet-url>",
		},
	})
}

func (s *Server) handleTweetJSON(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Missing required parameter: url",
			"message": "Please provide a tweet URL as a query parameter",
			"example": "/api/tweet?url=https://x.com/username/status/1234567890",
		})
		return
	}

	tweet, err := s.tweets.GetTweet(r.Context(), url)
	if err != nil {
		s.writeJSONError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tweetResponse{Success: true, Data: tweet})
}

func (s *Server) writeJSONError(w http.ResponseWriter, err error) {
	resp := errorResponse{
		Error:   errors.GetCode(err),
		Message: errors.UserMessage(err),
	}
	var appErr *errors.Error
	if stderrors.As(err, &appErr) && appErr.StatusCode != 0 {
		resp.StatusCode = appErr.StatusCode
	}
	writeJSON(w, errors.HTTPStatus(err), resp)
}

func (s *Server) handleTweetHTML(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Security-Policy", htmlCSP)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	url := r.URL.Query().Get("url")
	if url == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("<h1>Missing URL parameter</h1>"))
		return
	}

	tweet, err := s.tweets.GetTweet(r.Context(), url)
	if err != nil {
		w.WriteHeader(errors.HTTPStatus(err))
		w.Write([]byte("<h1>Error</h1><p>" + render.EscapeHTML(errors.UserMessage(err)) + "</p>"))
		return
	}

	opts := render.OptionsFromQuery(r.URL.Query())
	w.Write([]byte(render.RenderHTML(tweet, opts)))
}

func (s *Server) handleTweetSVG(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")

	url := r.URL.Query().Get("url")
	if url == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(render.RenderErrorSVG("Missing URL parameter", RequestID(r.Context()))))
		return
	}

	tweet, err := s.tweets.GetTweet(r.Context(), url)
	if err != nil {
		w.WriteHeader(errors.HTTPStatus(err))
		w.Write([]byte(render.RenderErrorSVG(errors.UserMessage(err), RequestID(r.Context()))))
		return
	}
	w.Write([]byte(render.RenderSVG(tweet)))
}
