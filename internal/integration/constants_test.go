package integration_test

const (
	dbName         = "booking_system"
	dbUser         = "test_user"
	dbPassword     = "test_password"
	dbImageName    = "postgres:17-alpine"
	cacheImageName = "redis:7"
)

const (
	// User related constants
	TestUserName        = "Ravi Kumar"
	TestUserEmail       = "ravi@example.com"
	TestSecondUserName  = "Asha Patel"
	TestSecondUserEmail = "asha@example.com"

	// Movie related constants
	TestMovieTitle       = "Test Movie"
	TestMovieDescription = "A test movie description."
	TestMovieLanguage    = "English"
	TestMovieReleaseDate = "2026-01-01"
	TestMovieDuration    = 120
	TestMoviePosterUrl   = "https://example.com/poster.jpg"

	// Hall and show related constants
	TestHallName     = "Audi 1"
	TestHallCapacity = 25
	TestBookingDate  = "2026-10-01"
	TestSlot         = "11:00-14:00"
)
