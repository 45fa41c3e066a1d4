package http

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/feeds"
	actionService "github.com/reshetovitsme/groupwatch/internal/modules/action/service"
	adminDomain "github.com/reshetovitsme/groupwatch/internal/modules/admin/domain"
	chatDomain "github.com/reshetovitsme/groupwatch/internal/modules/chat/domain"
	runtimeDomain "github.com/reshetovitsme/groupwatch/internal/modules/runtime/domain"
	"github.com/reshetovitsme/groupwatch/internal/shared/config"
	"github.com/reshetovitsme/groupwatch/internal/shared/errors"
	sloghttp "github.com/samber/slog-http"
)

// ChatLister reads persisted chat records
type ChatLister interface {
	GetAllChats(ctx context.Context) ([]*chatDomain.Chat, error)
	GetChat(ctx context.Context, chatID int64) (*chatDomain.Chat, error)
}

// AdminLister reads the admin cache
type AdminLister interface {
	Admins(chatID int64) (*adminDomain.AdminList, bool)
	Refresh(ctx context.Context, chatID int64, force bool) error
}

// FeedGenerator renders the action journal
type FeedGenerator interface {
	GenerateFeed(chatID int64, baseURL string) *feeds.Feed
}

// StatsSource exposes executor counters
type StatsSource interface {
	Stats() *actionService.Stats
}

// Sizer reports how many entries an in-memory store holds
type Sizer interface {
	Len() int
}

// SessionLister exposes per-chat runtime state
type SessionLister interface {
	Snapshot() []runtimeDomain.Session
	Get(chatID int64) (runtimeDomain.Session, bool)
}

// Deps are the read models served over HTTP
type Deps struct {
	Chats    ChatLister
	Admins   AdminLister
	Feed     FeedGenerator
	Stats    StatsSource
	Sessions SessionLister

	StatusCache Sizer
	Journal     Sizer
}

type statsResponse struct {
	actionService.StatsSnapshot
	CachedStatuses int `json:"cached_statuses"`
	JournalEntries int `json:"journal_entries"`
}

// Server exposes health, counters, chat records and the action feed
type Server struct {
	cfg    *config.Config
	deps   Deps
	logger *slog.Logger
	server *http.Server
}

// New creates a new HTTP server
func New(cfg *config.Config, deps Deps) *Server {
	return &Server{
		cfg:    cfg,
		deps:   deps,
		logger: slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Handler builds the routed handler with logging and recovery middleware
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /stats", s.handleStats)
	mux.HandleFunc("GET /chats", s.handleChats)
	mux.HandleFunc("GET /chats/{chatID}/admins", s.handleAdmins)
	mux.HandleFunc("GET /sessions", s.handleSessions)
	mux.HandleFunc("GET /sessions/{chatID}", s.handleSession)
	mux.HandleFunc("GET /feed", s.handleFeed)
	mux.HandleFunc("GET /feed/{chatID}", s.handleFeed)

	handler := sloghttp.Recovery(mux)
	return sloghttp.New(s.logger)(handler)
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.cfg.HTTPPort)
	s.logger.Info("HTTP server starting", "addr", addr)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := s.server.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops a started server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statsResponse{
		StatsSnapshot:  s.deps.Stats.Stats().Snapshot(),
		CachedStatuses: s.deps.StatusCache.Len(),
		JournalEntries: s.deps.Journal.Len(),
	})
}

func (s *Server) handleChats(w http.ResponseWriter, r *http.Request) {
	chats, err := s.deps.Chats.GetAllChats(r.Context())
	if err != nil {
		s.logger.Error("Error listing chats", "error", err)
		http.Error(w, "Failed to list chats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, chats)
}

func (s *Server) handleAdmins(w http.ResponseWriter, r *http.Request) {
	chatID, ok := parseChatID(w, r)
	if !ok {
		return
	}

	if _, err := s.deps.Chats.GetChat(r.Context(), chatID); err != nil {
		if stderrors.Is(err, errors.ErrChatNotFound) {
			http.Error(w, "Chat not found", http.StatusNotFound)
			return
		}
		s.logger.Error("Error reading chat", "chat_id", chatID, "error", err)
		http.Error(w, "Failed to read chat", http.StatusInternalServerError)
		return
	}

	force := r.URL.Query().Get("refresh") == "true"
	if err := s.deps.Admins.Refresh(r.Context(), chatID, force); err != nil {
		s.logger.Warn("Error refreshing admins", "chat_id", chatID, "error", err)
	}

	list, ok := s.deps.Admins.Admins(chatID)
	if !ok {
		http.Error(w, "Admin list unavailable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Sessions.Snapshot())
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	chatID, ok := parseChatID(w, r)
	if !ok {
		return
	}

	session, found := s.deps.Sessions.Get(chatID)
	if !found {
		http.Error(w, "No session for chat", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	var chatID int64
	if r.PathValue("chatID") != "" {
		id, ok := parseChatID(w, r)
		if !ok {
			return
		}
		chatID = id
	}

	baseURL := fmt.Sprintf("%s://%s", getScheme(r), r.Host)
	feed := s.deps.Feed.GenerateFeed(chatID, baseURL)

	rss, err := feed.ToRss()
	if err != nil {
		s.logger.Error("Error converting feed to RSS", "error", err)
		http.Error(w, "Failed to generate RSS", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(rss))
}

func parseChatID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	chatID, err := strconv.ParseInt(r.PathValue("chatID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid chat ID", http.StatusBadRequest)
		return 0, false
	}
	return chatID, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
