package gateway

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"messenger/proto/messenger"
)

// Handler exposes the two gateway endpoints over HTTP:
//
//	POST /sendMessage         {author, text} -> {"sendTime": "..."}
//	POST /getAndFlushMessages                -> [{author, text, sendTime}, ...]
//
// Both are POST to stay wire-compatible with the original polling clients.
type Handler struct {
	log     *slog.Logger
	client  messenger.MessengerServiceClient
	postbox *PostBox
}

func NewHandler(log *slog.Logger, client messenger.MessengerServiceClient, postbox *PostBox) *Handler {
	return &Handler{log: log, client: client, postbox: postbox}
}

func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /sendMessage", h.sendMessage)
	mux.HandleFunc("POST /getAndFlushMessages", h.getAndFlushMessages)
	mux.HandleFunc("/", h.notImplemented)
	return mux
}

type sendMessageRequest struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

type sendMessageResponse struct {
	SendTime string `json:"sendTime"`
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	// Empty author or text is permitted: the core timestamps and fans out
	// whatever it is given.
	resp, err := h.client.SendMessage(r.Context(), &messenger.SendMessageRequest{
		Author: req.Author,
		Text:   req.Text,
	})
	if err != nil {
		h.log.Error("SendMessage failed upstream", "error", err)
		http.Error(w, "messenger server unavailable", http.StatusBadGateway)
		return
	}

	h.writeJSON(w, sendMessageResponse{
		SendTime: FormatSendTime(resp.SendTime.AsTime()),
	})
}

func (h *Handler) getAndFlushMessages(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, h.postbox.CollectAndFlush())
}

func (h *Handler) notImplemented(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, "not implemented", http.StatusNotImplemented)
}

func (h *Handler) writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("failed to write response", "error", err)
	}
}
