package main

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

func (app *application) routes(allowedOrigins string) http.Handler {
	mux := http.NewServeMux()

	var (
		base = func(next http.Handler) http.Handler {
			return app.logAndTraceRequest(secureHeaders(app.timeout(next)))
		}
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(app.identifySession(base(next)))))
		}
		// Chat endpoints call an external model and need more headroom than
		// the local sqlite endpoints.
		chatSession = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(app.identifySession(
				app.logAndTraceRequest(secureHeaders(app.chatTimeout(next)))))))
		}
	)

	mux.Handle("GET /api/profile", session(http.HandlerFunc(app.profileGET)))
	mux.Handle("PUT /api/profile", session(http.HandlerFunc(app.profilePUT)))
	mux.Handle("POST /api/onboarding", session(http.HandlerFunc(app.onboardingPOST)))

	mux.Handle("GET /api/program", session(http.HandlerFunc(app.programGET)))
	mux.Handle("GET /api/program/schedule", session(http.HandlerFunc(app.scheduleGET)))
	mux.Handle("GET /api/program/schedule/{day}", session(http.HandlerFunc(app.dayPlanGET)))

	mux.Handle("GET /api/diary", session(http.HandlerFunc(app.diaryMonthGET)))
	mux.Handle("GET /api/diary/{date}", session(http.HandlerFunc(app.diaryGET)))
	mux.Handle("POST /api/diary/{date}/meals/{slot}/toggle", session(http.HandlerFunc(app.mealTogglePOST)))
	mux.Handle("POST /api/diary/{date}/exercises/toggle", session(http.HandlerFunc(app.exerciseTogglePOST)))
	mux.Handle("POST /api/diary/{date}/weight", session(http.HandlerFunc(app.weightPOST)))
	mux.Handle("POST /api/diary/{date}/workout-part", session(http.HandlerFunc(app.workoutPartPOST)))

	mux.Handle("POST /api/records", session(http.HandlerFunc(app.recordPOST)))
	mux.Handle("GET /api/records/{exercise}/last", session(http.HandlerFunc(app.recordLastGET)))

	mux.Handle("GET /api/report/weekly", session(http.HandlerFunc(app.weeklyReportGET)))

	mux.Handle("POST /api/chat", chatSession(http.HandlerFunc(app.chatPOST)))
	mux.Handle("GET /api/chat/greeting", session(http.HandlerFunc(app.greetingGET)))
	mux.Handle("GET /api/chat/quick-replies", session(http.HandlerFunc(app.quickRepliesGET)))
	mux.Handle("POST /api/chat/actions", session(http.HandlerFunc(app.actionPOST)))

	mux.Handle("GET /api/healthy", session(http.HandlerFunc(app.healthy)))

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(allowedOrigins, ","),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	return corsMiddleware.Handler(mux)
}
