package dto

// DLQResponse reports the dead-letter queue of the stock worker.
type DLQResponse struct {
	Queue      string `json:"queue"`
	Pendientes int64  `json:"pendientes"`
}

// RequeueResponse is the result of POST /admin/dlq/requeue.
type RequeueResponse struct {
	Queue       string `json:"queue"`
	Reencolados int    `json:"reencolados"`
	Pendientes  int64  `json:"pendientes"`
}
