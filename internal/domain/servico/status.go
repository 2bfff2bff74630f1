package servico

// ===============================
// Service Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "agendado"
	StatusInProgress Status = "em_progresso"
	StatusCompleted  Status = "concluido"
	StatusCancelled  Status = "cancelado"
)

var Statuses = []Status{
	StatusScheduled,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// InitialStatus is the status of every newly created service. Any status may
// follow any other afterwards; completed and cancelled are terminal only by
// convention.
func InitialStatus() Status {
	return StatusScheduled
}

// BlocksDate reports whether a service in this status occupies its client's
// day in the base table.
func (s Status) BlocksDate() bool {
	return s != StatusCancelled
}

// ===============================
// Service Type
// ===============================

type Type string

const (
	TypeGarden Type = "jardinagem"
	TypePool   Type = "piscina"
)

func (t Type) Valid() bool {
	return t == TypeGarden || t == TypePool
}
