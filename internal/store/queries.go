package store

// Event queries
const (
	queryInsertEvent = `
		INSERT INTO events (pool_id, event_type, worker_id, job_id, duration_us, cpu_load, workers, action, error_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	queryDeleteEventsBefore = `DELETE FROM events WHERE created_at < ?`
)

var eventColumns = []string{
	"id",
	"pool_id",
	"event_type",
	"worker_id",
	"job_id",
	"duration_us",
	"cpu_load",
	"workers",
	"action",
	"error_message",
	"created_at",
}
