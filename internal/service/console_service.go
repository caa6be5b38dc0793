package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/alifsmart-team/alifsmart-analytics-service/internal/model"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/session"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/view"
)

// IntentEmitter records audited intents against a session. Satisfied by
// AuditService.
type IntentEmitter interface {
	Emit(ctx context.Context, sess *session.Session, action, target string)
}

// ConsoleService orchestrates the per-admin console sessions: bootstrap,
// snapshot projection, navigation, toggles, entity intents, and the
// audited credential reveal. It owns no state itself; everything lives in
// the session manager.
type ConsoleService struct {
	sessions *session.Manager
	prefs    *PreferenceService
	audit    IntentEmitter
	log      zerolog.Logger
}

func NewConsoleService(sessions *session.Manager, prefs *PreferenceService, audit IntentEmitter, log zerolog.Logger) *ConsoleService {
	return &ConsoleService{
		sessions: sessions,
		prefs:    prefs,
		audit:    audit,
		log:      log.With().Str("component", "console_service").Logger(),
	}
}

// Bootstrap creates (or replaces) the admin's console session. Dark mode
// is resolved once here through the preference order; the ambient signal
// comes from the client because only the client can observe it.
func (s *ConsoleService) Bootstrap(ctx context.Context, adminID int, email string, ambientDark bool, initialWidth int) *session.Session {
	dark := s.prefs.ResolveDarkMode(ctx, adminID, ambientDark)
	sess := session.New(adminID, email, dark, initialWidth)
	s.sessions.Put(sess)

	s.log.Info().
		Int("admin_id", adminID).
		Bool("dark_mode", dark).
		Int("initial_width", initialWidth).
		Msg("console session bootstrapped")

	return sess
}

// Snapshot projects the admin's session into the rendering DTO.
func (s *ConsoleService) Snapshot(adminID int) (*Snapshot, error) {
	sess, err := s.sessions.Get(adminID)
	if err != nil {
		return nil, err
	}
	return buildSnapshot(sess.ExportState())
}

// Navigate switches the active view. ClassDetail and unknown views are
// refused by the router with the state unchanged.
func (s *ConsoleService) Navigate(adminID int, target view.View) error {
	sess, err := s.sessions.Get(adminID)
	if err != nil {
		return err
	}
	return sess.Navigate(target)
}

// Back returns to the dashboard unconditionally.
func (s *ConsoleService) Back(adminID int) error {
	sess, err := s.sessions.Get(adminID)
	if err != nil {
		return err
	}
	sess.Back()
	return nil
}

// OpenClassDetail performs the guarded detail transition.
func (s *ConsoleService) OpenClassDetail(adminID, reportID int) error {
	sess, err := s.sessions.Get(adminID)
	if err != nil {
		return err
	}
	return sess.OpenClassDetail(reportID)
}

// SetSearchQuery updates the transient filter text for the active view.
func (s *ConsoleService) SetSearchQuery(adminID int, query string) error {
	sess, err := s.sessions.Get(adminID)
	if err != nil {
		return err
	}
	sess.SetSearchQuery(query)
	return nil
}

// ToggleDarkMode flips the theme and writes the preference through.
func (s *ConsoleService) ToggleDarkMode(ctx context.Context, adminID int) (bool, error) {
	sess, err := s.sessions.Get(adminID)
	if err != nil {
		return false, err
	}
	return s.prefs.Toggle(ctx, sess)
}

// ToggleDisclosure flips one (kind, id) row expansion flag.
func (s *ConsoleService) ToggleDisclosure(adminID int, kind model.EntityKind, id int) (bool, error) {
	sess, err := s.sessions.Get(adminID)
	if err != nil {
		return false, err
	}
	return sess.ToggleDisclosure(kind, id), nil
}

// ObserveViewport records one width signal from the viewport stream.
func (s *ConsoleService) ObserveViewport(adminID, width int) (bool, error) {
	sess, err := s.sessions.Get(adminID)
	if err != nil {
		return false, err
	}
	return sess.ObserveViewport(width), nil
}

// AddClass appends a class record and emits the audit intent.
func (s *ConsoleService) AddClass(ctx context.Context, adminID int, rec model.ClassRecord) (model.ClassRecord, error) {
	sess, err := s.sessions.Get(adminID)
	if err != nil {
		return model.ClassRecord{}, err
	}
	created := sess.AddClass(rec)
	s.audit.Emit(ctx, sess, "Tambah Kelas", created.Name)
	return created, nil
}

// AddTeacher appends a teacher record, vaults the secret, and emits the
// audit intent. The raw secret never enters the record.
func (s *ConsoleService) AddTeacher(ctx context.Context, adminID int, rec model.TeacherRecord, secret string) (model.TeacherRecord, error) {
	sess, err := s.sessions.Get(adminID)
	if err != nil {
		return model.TeacherRecord{}, err
	}
	created := sess.AddTeacher(rec, secret)
	s.audit.Emit(ctx, sess, "Tambah Guru", created.Name)
	return created, nil
}

// AddStaff appends a staff record, vaults the secret, and emits the
// audit intent.
func (s *ConsoleService) AddStaff(ctx context.Context, adminID int, rec model.StaffRecord, secret string) (model.StaffRecord, error) {
	sess, err := s.sessions.Get(adminID)
	if err != nil {
		return model.StaffRecord{}, err
	}
	created := sess.AddStaff(rec, secret)
	s.audit.Emit(ctx, sess, "Tambah Staff", created.Name)
	return created, nil
}

// AddStudent appends a student record, vaults the secret, and emits the
// audit intent.
func (s *ConsoleService) AddStudent(ctx context.Context, adminID int, rec model.StudentRecord, secret string) (model.StudentRecord, error) {
	sess, err := s.sessions.Get(adminID)
	if err != nil {
		return model.StudentRecord{}, err
	}
	created := sess.AddStudent(rec, secret)
	s.audit.Emit(ctx, sess, "Tambah Murid", created.Name)
	return created, nil
}

// kindLabels maps entity kinds to the console's Indonesian display nouns.
var kindLabels = map[model.EntityKind]string{
	model.KindClass:   "Kelas",
	model.KindTeacher: "Guru",
	model.KindStaff:   "Staff",
	model.KindStudent: "Murid",
}

// EmitEntityIntent records an edit or delete intent in the audit trail.
// The collections are never touched: these actions are observable intents
// only, not mutations.
func (s *ConsoleService) EmitEntityIntent(ctx context.Context, adminID int, action model.IntentAction, kind model.EntityKind, id int) error {
	sess, err := s.sessions.Get(adminID)
	if err != nil {
		return err
	}
	target, err := sess.EntityLabel(kind, id)
	if err != nil {
		return err
	}

	verb := "Edit"
	if action == model.IntentDelete {
		verb = "Hapus"
	}
	s.audit.Emit(ctx, sess, verb+" "+kindLabels[kind], target)
	return nil
}

// RevealCredential resolves the raw secret from the vault as a one-off,
// audited round-trip. Snapshots stay masked regardless.
func (s *ConsoleService) RevealCredential(ctx context.Context, adminID int, kind model.EntityKind, id int) (string, error) {
	sess, err := s.sessions.Get(adminID)
	if err != nil {
		return "", err
	}
	value, err := sess.RevealSecret(kind, id)
	if err != nil {
		return "", err
	}
	// RevealSecret resolved the record, so the label lookup cannot miss.
	target, _ := sess.EntityLabel(kind, id)
	s.audit.Emit(ctx, sess, "Lihat Kredensial", target)
	return value, nil
}

// ContactGuardian records the intent to contact a student's guardian.
// The console never places the call itself.
func (s *ConsoleService) ContactGuardian(ctx context.Context, adminID, studentID int) (string, error) {
	sess, err := s.sessions.Get(adminID)
	if err != nil {
		return "", err
	}
	student, err := sess.FindStudent(studentID)
	if err != nil {
		return "", err
	}
	s.audit.Emit(ctx, sess, "Hubungi Wali Murid", student.Name)
	return student.GuardianContact, nil
}

// Logout records the intent and drops the live session. The login-token
// invalidation is the auth layer's half of the operation.
func (s *ConsoleService) Logout(ctx context.Context, adminID int) {
	if sess, err := s.sessions.Get(adminID); err == nil {
		s.audit.Emit(ctx, sess, "Logout", sess.Email)
	}
	s.sessions.Drop(adminID)
}
