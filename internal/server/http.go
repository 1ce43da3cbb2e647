package server

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/karupanerura/arithmetic-syntax/internal/evaluator"
	"github.com/karupanerura/arithmetic-syntax/internal/syntax"
	"github.com/karupanerura/arithmetic-syntax/internal/types"
)

const maxRequestBodySize = 1 << 20

type request struct {
	Source string `json:"source"`
}

type httpHandler struct {
	mux *http.ServeMux
}

func NewHTTPHandler() http.Handler {
	h := &httpHandler{mux: http.NewServeMux()}
	h.mux.HandleFunc("/v1/tokenize", h.post(h.tokenize))
	h.mux.HandleFunc("/v1/parse", h.post(h.parse))
	h.mux.HandleFunc("/v1/evaluate", h.post(h.evaluate))
	return h
}

func (h *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *httpHandler) post(next func(http.ResponseWriter, *request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		defer r.Body.Close()

		var req request
		if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodySize)).Decode(&req); err != nil {
			log.Printf("failed to decode request body: %v", err)
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		next(w, &req)
	}
}

func (h *httpHandler) tokenize(w http.ResponseWriter, req *request) {
	resJSON(w, http.StatusOK, map[string]any{
		"tokens": syntax.Tokenize(req.Source),
	})
}

func (h *httpHandler) parse(w http.ResponseWriter, req *request) {
	tree, err := syntax.Parse(req.Source)
	if err != nil {
		resError(w, err)
		return
	}

	resJSON(w, http.StatusOK, map[string]any{
		"tree":      tree,
		"sexpr":     syntax.SExpr(tree),
		"formatted": syntax.Format(tree),
	})
}

func (h *httpHandler) evaluate(w http.ResponseWriter, req *request) {
	tree, err := syntax.Parse(req.Source)
	if err != nil {
		resError(w, err)
		return
	}

	v, err := evaluator.Evaluate(tree)
	if err != nil {
		resError(w, err)
		return
	}

	resJSON(w, http.StatusOK, map[string]any{
		"tree":  tree,
		"value": v,
	})
}

func resError(w http.ResponseWriter, err error) {
	var exception types.Exception
	if !errors.As(err, &exception) {
		log.Printf("unexpected error: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := resJSON(w, http.StatusUnprocessableEntity, map[string]any{"error": exception.Exception()}); err != nil {
		log.Printf("failed to write error response: %v", err)
	}
}

func resJSON(w http.ResponseWriter, status int, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(b)+1))
	w.WriteHeader(status)

	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("w.Write: %w", err)
	}
	if _, err = io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("io.WriteString: %w", err)
	}
	return nil
}
