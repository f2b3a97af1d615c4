package directory

import (
	"fmt"
	"net/http"
	"time"

	"labclinics-service/internal/app/models"
	"labclinics-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// SnapshotProjector turns a raw collection snapshot into the payload a
// particular stream sends. The admin stream sends every record; the public
// stream narrows to active profiles.
type SnapshotProjector func(doctors []*models.Doctor) interface{}

// ServeSnapshotStream writes collection snapshots to the client as
// server-sent events until the client disconnects. Heartbeat comments keep
// intermediaries from closing the idle connection.
func ServeSnapshotStream(
	w http.ResponseWriter,
	r *http.Request,
	log *zap.Logger,
	hub *SnapshotHub,
	heartbeatInterval time.Duration,
	project SnapshotProjector,
) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextEventStream)
	w.Header().Set(constvars.HeaderCacheControl, "no-cache")
	w.Header().Set(constvars.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	snapshots, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": heartbeat\n\n")
			flusher.Flush()
		case snapshot := <-snapshots:
			payload, err := json.Marshal(project(snapshot))
			if err != nil {
				log.Error("failed to encode snapshot event", zap.Error(err))
				continue
			}
			fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
