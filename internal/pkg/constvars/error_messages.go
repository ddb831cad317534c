package constvars

// Client messages are safe to surface to end users; Dev messages are logged.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again"
	ErrClientTooManyRequests               = "Too many requests, you are temporarily blocked"

	ErrClientSlotAlreadyBooked       = "This time slot has just been booked by someone else, please pick another one"
	ErrClientBookingNotFound         = "The booking you are looking for does not exist"
	ErrClientConsultantNotFound      = "This consultant is no longer available"
	ErrClientSlotSelectionIncomplete = "Please choose both a day and a time for your session"
	ErrClientSessionModeRequired     = "Please choose between an online or in-person session"
	ErrClientSubmissionInFlight      = "Your booking is already being processed, please wait"
	ErrClientInvalidBookingStatus    = "Booking status can only be set to confirmed or cancelled"
	ErrClientInvalidPrice            = "Price cannot be negative"
	ErrClientBookingServiceDown      = "We could not reach the booking service, please try again"
)

const (
	ErrDevValidationFailed       = "Request body validation failed"
	ErrDevMissingRequestID       = "Request ID is missing from request context"
	ErrDevCannotParseJSON        = "Failed to parse JSON payload"
	ErrDevCannotMarshalJSON      = "Failed to marshal value to JSON"
	ErrDevServerDeadlineExceeded = "Context deadline exceeded while processing request"
	ErrDevServerProcess          = "Unhandled error while processing request"

	ErrDevCreateHTTPRequest = "Failed to create outbound HTTP request"
	ErrDevSendHTTPRequest   = "Failed to send outbound HTTP request"
	ErrDevDecodeResponse    = "Failed to decode response body from %s"

	ErrDevMalformedTimeLabel = "Time-of-day label does not match the HH:MM AM|PM shape"
	ErrDevInvalidPrice       = "Base price must be non-negative"
	ErrDevInvalidStep        = "Transition is not allowed from step %s"
	ErrDevMissingSlot        = "Day and time label must both be set before leaving slot selection"
	ErrDevMissingSessionMode = "Session mode is required for hybrid consultants"
	ErrDevSubmissionInFlight = "A submission for this draft is already outstanding"

	ErrDevBookingSlotTaken     = "Slot claim already exists for this consultant and start instant"
	ErrDevBookingNotFound      = "Booking document not found"
	ErrDevConsultantNotFound   = "Consultant document not found"
	ErrDevInvalidBookingStatus = "Status must be one of confirmed, cancelled"

	ErrDevDBFailedToFindDocument   = "Database failed to find document"
	ErrDevDBFailedToInsertDocument = "Database failed to insert document"
	ErrDevDBFailedToUpdateDocument = "Database failed to update document"
	ErrDevDBFailedToDeleteDocument = "Database failed to delete document"

	ErrDevRedisGetData    = "Redis failed to get data"
	ErrDevRedisSetData    = "Redis failed to set data"
	ErrDevRedisDeleteData = "Redis failed to delete data"
	ErrDevRedisSetNX      = "Redis failed to set data with NX semantics"
	ErrDevRedisUnlock     = "Redis lock could not be released"
	ErrDevRedisGetNoData  = "Redis has no data for key: %s"

	ErrDevRabbitMQPublishMessage = "RabbitMQ failed to publish message to queue %s"
)
