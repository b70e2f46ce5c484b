package dto

// AssetRequest - полный набор полей имущества для создания и обновления.
// Частичные обновления не поддерживаются.
type AssetRequest struct {
	Name              string   `json:"name" validate:"required"`
	Description       string   `json:"description"`
	Value             *float64 `json:"value" validate:"required,finite"`
	ResponsiblePerson string   `json:"responsible_person"`
	PurchasePlace     string   `json:"purchase_place"`
	City              string   `json:"city" validate:"required"`
	Street            string   `json:"street" validate:"required"`
	BuildingNumber    string   `json:"building_number" validate:"required"`
	Room              string   `json:"room" validate:"required"`
	DateReceived      string   `json:"date_received" validate:"required,ddmmyyyy"`
}

// EmployeeRequest - полный набор полей сотрудника для создания и обновления
type EmployeeRequest struct {
	Name       string   `json:"name" validate:"required"`
	Position   string   `json:"position" validate:"required"`
	HireDate   string   `json:"hire_date" validate:"required,ddmmyyyy"`
	Department string   `json:"department"`
	Supervisor string   `json:"supervisor"`
	Salary     *float64 `json:"salary" validate:"required,finite"`
}

// ValueRange - включительный диапазон стоимости
type ValueRange struct {
	Min float64
	Max float64
}

// DateRange - включительный диапазон дат получения в формате DD-MM-YYYY
type DateRange struct {
	Start string `validate:"required,ddmmyyyy"`
	End   string `validate:"required,ddmmyyyy"`
}

// ListAssetsQuery - параметры выборки имущества.
// Filters: колонка -> подстрока; пустые значения игнорируются.
type ListAssetsQuery struct {
	SortBy    string
	SortOrder string
	Filters   map[string]string
	Value     *ValueRange
	Date      *DateRange
}

// ImportResult - итог импорта CSV
type ImportResult struct {
	Inserted int        `json:"inserted"`
	Failed   []RowError `json:"failed,omitempty"`
}

// RowError - ошибка одной строки CSV (Line считается с заголовком как строкой 1)
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ImportErrorResponse - ошибка импорта вместе со счётчиками уже обработанных строк
type ImportErrorResponse struct {
	ErrorResponse
	ImportResult
}
