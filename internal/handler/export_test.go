package handler

// Export for testing
type EntryResponse = entryResponse
type EntryListResponse = entryListResponse
type SubmitResponse = submitResponse
type RejectionResponse = rejectionResponse
type StatsResponse = statsResponse
type InfoResponse = infoResponse

var WriteServiceError = writeServiceError
var Itoa = itoa
