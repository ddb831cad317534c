package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "FITBOOK_SVC_"
)

const (
	ResourceBooking    = "bookings"
	ResourceConsultant = "consultants"
)

// Booking time catalog. Sessions are 30 minutes long and slots are offered
// hourly between 09:00 and the end of the business day.
const (
	BookingSessionDurationMinutes = 30
	BookingCandidateDayCount      = 30
	BookingTimeLabelLayout        = "03:04 PM"
)

// BookingTaxRate is the platform-wide tax applied on top of package prices.
const BookingTaxRate = "0.10"

const (
	BookingStatusBooked    = "booked"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

const (
	SessionModeOnline  = "online"
	SessionModeOffline = "offline"
	SessionModeHybrid  = "hybrid"
)

const (
	PackageKindSession = "session"
	PackageKindWeek    = "week"
	PackageKindMonth   = "month"
	PackageKindCustom  = "custom-package"
)

const (
	BookingLockKeyFormat           = "booking_lock:%s:%s"
	BookingLockExpirationInSeconds = 10
)

const (
	BookingEventQueueName   = "booking_events_queue"
	BookingEventConfirmed   = "booking.confirmed"
	BookingEventCancelled   = "booking.cancelled"
	MongoCollectionBookings = "bookings"
	MongoCollectionClaims   = "booking_slot_claims"
	MongoCollectionConsults = "consultants"
)
