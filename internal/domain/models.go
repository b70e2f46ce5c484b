package domain

// Asset представляет учитываемое имущество
type Asset struct {
	ID                int64   `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name              string  `json:"name" gorm:"column:name;type:text;not null"`
	Description       string  `json:"description" gorm:"column:description;type:text"`
	Value             float64 `json:"value" gorm:"column:value;type:decimal(10,2);not null"`
	ResponsiblePerson string  `json:"responsible_person" gorm:"column:responsible_person;type:text"`
	PurchasePlace     string  `json:"purchase_place" gorm:"column:purchase_place;type:text"`
	City              string  `json:"city" gorm:"column:city;type:text;not null"`
	Street            string  `json:"street" gorm:"column:street;type:text;not null"`
	BuildingNumber    string  `json:"building_number" gorm:"column:building_number;type:text;not null"`
	Room              string  `json:"room" gorm:"column:room;type:text;not null"`
	DateReceived      string  `json:"date_received" gorm:"column:date_received;type:text;not null;default:'01-01-2000'"`
}

// TableName задаёт имя таблицы для GORM
func (Asset) TableName() string {
	return "Assets"
}

// Employee представляет сотрудника.
// Supervisor - произвольная строка, не внешний ключ.
type Employee struct {
	ID         int64   `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name       string  `json:"name" gorm:"column:name;type:text;not null"`
	Position   string  `json:"position" gorm:"column:position;type:text;not null"`
	HireDate   string  `json:"hire_date" gorm:"column:hire_date;type:text;not null"`
	Department string  `json:"department" gorm:"column:department;type:text;default:''"`
	Supervisor string  `json:"supervisor" gorm:"column:supervisor;type:text;default:''"`
	Salary     float64 `json:"salary" gorm:"column:salary;type:decimal(10,2);not null;default:0"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "Employees"
}

// EntityKind определяет тип сущности для импорта/экспорта
type EntityKind string

const (
	KindAssets    EntityKind = "assets"
	KindEmployees EntityKind = "employees"
)

// ParseEntityKind разбирает имя типа сущности
func ParseEntityKind(s string) (EntityKind, error) {
	switch EntityKind(s) {
	case KindAssets, KindEmployees:
		return EntityKind(s), nil
	default:
		return "", NewValidationError("kind", "must be one of: assets, employees")
	}
}
