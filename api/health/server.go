package health

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// GetServerHealth handles GET /health/server. Uptime and memory figures come
// straight from the runtime, so this never fails.
func (hrm *HealthRoutesManager) GetServerHealth(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(hrm.healthService.GetServerHealthStatus()),
		gecho.Send(),
	)
}

// GetDatabaseHealth handles GET /health/database. A failed ping still reports
// the measured snapshot, so operators see the latency of the failure.
func (hrm *HealthRoutesManager) GetDatabaseHealth(w http.ResponseWriter, r *http.Request) {
	dbHealthStatus, err := hrm.healthService.GetDatabaseHealthStatus()
	if err != nil {
		gecho.InternalServerError(w,
			gecho.WithMessage("La base de datos no responde"),
			gecho.WithData(dbHealthStatus),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(dbHealthStatus),
		gecho.Send(),
	)
}
