package dto

// Niveles de alerta de stock bajo.
const (
	AlertLevelCritical = "critical" // stock en cero
	AlertLevelWarning  = "warning"  // stock > 0 pero <= mínimo
)

// AlertProduct producto de la fila en alerta.
type AlertProduct struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Category string `json:"category"`
}

// AlertStore tienda de la fila en alerta.
type AlertStore struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address"`
}

// Alert fila de inventario bajo mínimo con deficit = min_stock - current_stock.
type Alert struct {
	InventoryID  int64        `json:"inventory_id"`
	Product      AlertProduct `json:"product"`
	Store        AlertStore   `json:"store"`
	CurrentStock int          `json:"current_stock"`
	MinStock     int          `json:"min_stock"`
	Deficit      int          `json:"deficit"`
	AlertLevel   string       `json:"alert_level"`
}

// AlertSummary conteos agregados del reporte.
type AlertSummary struct {
	TotalAlerts    int `json:"total_alerts"`
	CriticalAlerts int `json:"critical_alerts"`
	WarningAlerts  int `json:"warning_alerts"`
}

// AlertFilter filtro aplicado al reporte (eco del query param).
type AlertFilter struct {
	StoreID *int64 `json:"store_id"`
}

// AlertsData payload de GET /inventory/alerts.
type AlertsData struct {
	Alerts        []Alert      `json:"alerts"`
	Summary       AlertSummary `json:"summary"`
	FilterApplied AlertFilter  `json:"filter_applied"`
}
