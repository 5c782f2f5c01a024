// services/chat.go
package services

import "fmt"

// ChatRole selects which fixed system instruction the assistant speaks
// with. Anything unrecognized falls through to the bride persona, which
// is what the frontend relies on when it omits the role entirely.
type ChatRole int

const (
	RoleNovia ChatRole = iota
	RoleGuest
	RolePlanner
)

// RoleFromString maps the caller-declared role onto the closed set.
// "admin" is an alias for planner.
func RoleFromString(role string) ChatRole {
	switch role {
	case "guest":
		return RoleGuest
	case "planner", "admin":
		return RolePlanner
	default:
		return RoleNovia
	}
}

// Instruction returns the system instruction for the role. The bride
// persona is personalized with her display name.
func (r ChatRole) Instruction(userName string) string {
	switch r {
	case RoleGuest:
		return "Eres un asistente para invitados de una boda. Responde dudas sobre vestimenta, ubicación o regalos de forma amable."
	case RolePlanner:
		return "Eres el Asistente Ejecutivo de la Wedding Planner Andrea Figueroa. Responde de forma técnica y profesional."
	default:
		nombreNovia := userName
		if nombreNovia == "" {
			nombreNovia = "Novia"
		}
		return fmt.Sprintf("Eres 'AF Virtual', asistente personal de la novia %s. Eres amable, entusiasta, ayudas a calmar nervios y das tips de boda personalizados.", nombreNovia)
	}
}
