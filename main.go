package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/kjanuda/cityget/cache"
	"github.com/kjanuda/cityget/clients"
	"github.com/kjanuda/cityget/handlers"
	"github.com/kjanuda/cityget/services"
	"github.com/kjanuda/cityget/storage"
)

func main() {
	mapsKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	geminiKey := os.Getenv("GEMINI_API_KEY")

	if mapsKey == "" {
		log.Printf("⚠️  GOOGLE_MAPS_API_KEY is not set - Google Maps requests will fail")
	}
	if geminiKey == "" {
		log.Printf("⚠️  GEMINI_API_KEY is not set - contact discovery will fail")
	}

	log.Printf("✅ Office locator starting...")

	// Response cache: Redis when configured, in-memory otherwise
	var responseCache cache.Cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rc, err := cache.NewRedisCache(redisURL, 6*time.Hour)
		if err != nil {
			log.Printf("⚠️  Redis unavailable, falling back to in-memory cache: %v", err)
			responseCache = cache.NewMemoryCache(6 * time.Hour)
		} else {
			log.Printf("✅ Redis cache connected")
			responseCache = rc
		}
	} else {
		responseCache = cache.NewMemoryCache(6 * time.Hour)
	}

	// Search log: DynamoDB when a table is configured
	var searchLog storage.SearchLogRepository
	if tableName := os.Getenv("SEARCH_LOG_TABLE"); tableName != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
		if err != nil {
			log.Printf("⚠️  Failed to load AWS config, search history disabled: %v", err)
		} else {
			searchLog = storage.NewSearchLogDynamoDBRepository(dynamodb.NewFromConfig(awsCfg), tableName)
			log.Printf("✅ Search history enabled (table: %s)", tableName)
		}
	}

	mapsClient := clients.NewGoogleMapsClient(mapsKey)
	geminiClient := clients.NewGeminiClient(geminiKey)

	geoService := services.NewGeoService(mapsClient, responseCache)
	officeService := services.NewOfficeSearchService(mapsClient, responseCache)
	contactService := services.NewContactDiscoveryService(geminiClient)
	distanceService := services.NewDistanceService(mapsClient)

	officeHandler := handlers.NewOfficeHandler(geoService, officeService, contactService, distanceService, searchLog)

	maxPerHour := 60
	if raw := os.Getenv("RATE_LIMIT_PER_HOUR"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			maxPerHour = n
		}
	}
	rateLimiter := NewRateLimiter(maxPerHour)

	// Routes
	http.HandleFunc("/", withCORS(handlers.HandleRoot))
	http.HandleFunc("/api/health", withCORS(handlers.HandleHealth))
	http.HandleFunc("/get-location", withCORS(withRateLimit(rateLimiter, officeHandler.HandleGetLocation)))
	http.HandleFunc("/find-office", withCORS(withRateLimit(rateLimiter, officeHandler.HandleFindOffice)))
	http.HandleFunc("/compare-offices", withCORS(withRateLimit(rateLimiter, officeHandler.HandleCompareOffices)))
	http.HandleFunc("/api/searches", withCORS(officeHandler.HandleRecentSearches))

	port := os.Getenv("PORT")
	if port == "" {
		port = "5002"
	}

	log.Printf("🌍 Server running on http://localhost:%s", port)
	log.Printf("1️⃣  POST /get-location - convert coordinates to city name")
	log.Printf("2️⃣  POST /find-office - nearest Divisional Secretariat with full contact info")
	log.Printf("3️⃣  POST /compare-offices - compare multiple nearby offices")
	log.Fatal(http.ListenAndServe(":"+port, nil))
}

// withCORS allows browser clients from any origin
func withCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next(w, r)
	}
}
