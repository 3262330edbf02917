package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/harmonics/chord"
	"github.com/jsphweid/harmonics/constants"
	"github.com/jsphweid/harmonics/diatonic"
	"github.com/jsphweid/harmonics/midi"
	"github.com/jsphweid/harmonics/model"
	"github.com/jsphweid/harmonics/note"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var port int

func init() {
	serveCmd.Flags().IntVar(&port, "port", 0, "port to listen on (default from HARMONICS_PORT)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord API over HTTP",
	Long:  `Serves the chord API over HTTP`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("port") {
			cfg.Port = port
		}
		return serve(cfg)
	},
}

type server struct {
	cfg     constants.Config
	builder *chord.Builder
	logger  *zap.Logger
}

// NewHandler returns the HTTP API.
func NewHandler(cfg constants.Config, b *chord.Builder, logger *zap.Logger) http.Handler {
	s := &server{cfg: cfg, builder: b, logger: logger}

	router := mux.NewRouter().StrictSlash(true)
	router.Use(s.withRequestID)
	router.HandleFunc("/chords", s.handleChord).Methods(http.MethodGet)
	router.HandleFunc("/keys/{key}/triads", s.handleKey(b.Triads)).Methods(http.MethodGet)
	router.HandleFunc("/keys/{key}/sevenths", s.handleKey(b.Sevenths)).Methods(http.MethodGet)
	router.HandleFunc("/keys/{key}/numerals/{numeral}", s.handleNumeral).Methods(http.MethodGet)
	router.HandleFunc("/shorthands", s.handleShorthands).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CorsOrigins,
		AllowedMethods: []string{http.MethodGet},
	})
	return c.Handler(router)
}

func (s *server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-Id", id)

		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("Handled request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Could not encode response", zap.Error(err))
	}
}

func (s *server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, note.ErrUnknownNote),
		errors.Is(err, diatonic.ErrInvalidKey),
		errors.Is(err, chord.ErrUnknownShorthand),
		errors.Is(err, chord.ErrUnknownNumeral),
		errors.Is(err, midi.ErrOutOfRange),
		errors.Is(err, strconv.ErrSyntax),
		errors.Is(err, strconv.ErrRange):
		status = http.StatusBadRequest
	default:
		s.logger.Error("Request failed", zap.Error(err))
	}
	s.writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

// GET /chords?symbol=Bbm7 or /chords?root=Bb&shorthand=m7, optional octave.
func (s *server) handleChord(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	symbol := q.Get("symbol")
	root, shorthand := chord.SplitSymbol(symbol)
	if symbol == "" {
		root, shorthand = q.Get("root"), q.Get("shorthand")
		symbol = root + shorthand
	}
	if root == "" {
		s.writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "symbol or root is required"})
		return
	}

	o := s.cfg.Octave
	if raw := q.Get("octave"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, fmt.Errorf("octave: %w", err))
			return
		}
		o = v
	}

	c, err := chord.Build(root, shorthand)
	if err != nil {
		s.writeError(w, err)
		return
	}
	keys, err := midi.Keys(c, o)
	if err != nil {
		s.writeError(w, err)
		return
	}
	desc, _ := chord.Meaning(shorthand)
	numbers := make([]int, len(keys))
	for i, k := range keys {
		numbers[i] = int(k)
	}

	s.writeJSON(w, http.StatusOK, model.ChordResponse{
		Symbol:      symbol,
		Root:        root,
		Shorthand:   shorthand,
		Description: desc,
		Notes:       c,
		Midi:        numbers,
		ChordKey:    midi.ChordKey(keys),
		NoteOn:      midi.Hex(midi.NoteOns(keys, s.cfg.Channel, s.cfg.Velocity)),
		NoteOff:     midi.Hex(midi.NoteOffs(keys, s.cfg.Channel)),
	})
}

func (s *server) handleKey(list func(string) ([]chord.Chord, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := mux.Vars(r)["key"]
		chords, err := list(key)
		if err != nil {
			s.writeError(w, err)
			return
		}
		res := model.KeyResponse{Key: key, Chords: make([][]string, 0, len(chords))}
		for _, c := range chords {
			res.Chords = append(res.Chords, c)
		}
		s.writeJSON(w, http.StatusOK, res)
	}
}

func (s *server) handleNumeral(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	c, err := s.builder.Numeral(vars["numeral"], vars["key"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, model.NumeralResponse{
		Key:     vars["key"],
		Numeral: vars["numeral"],
		Notes:   c,
	})
}

func (s *server) handleShorthands(w http.ResponseWriter, r *http.Request) {
	res := make([]model.Shorthand, 0)
	for _, sh := range chord.Shorthands() {
		desc, _ := chord.Meaning(sh)
		res = append(res, model.Shorthand{Shorthand: sh, Description: desc})
	}
	s.writeJSON(w, http.StatusOK, res)
}

func serve(cfg constants.Config) error {
	addr := fmt.Sprintf(":%v", cfg.Port)
	handler := NewHandler(cfg, newBuilder(), logger)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("Listening", zap.String("addr", addr))
	return srv.ListenAndServe()
}
