package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/hugohenrick/credit-manager/internal/adapter/repository"
	"github.com/hugohenrick/credit-manager/internal/domain/client"
	"github.com/hugohenrick/credit-manager/internal/domain/invoice"
	"github.com/hugohenrick/credit-manager/internal/domain/ledger"
	"github.com/hugohenrick/credit-manager/internal/domain/notification"
	"github.com/hugohenrick/credit-manager/internal/domain/superadmin"
	"github.com/hugohenrick/credit-manager/internal/domain/tenant"
	"github.com/hugohenrick/credit-manager/internal/domain/user"
)

var errMockUnexpected = errors.New("chamada não esperada pelo mock")

// mockLedgerRepository implementa ledger.Repository para os testes
type mockLedgerRepository struct {
	RecordSaleFunc    func(ctx context.Context, in ledger.SaleInput) (*ledger.SaleResult, error)
	RecordPaymentFunc func(ctx context.Context, in ledger.PaymentInput) (*ledger.PaymentResult, error)
}

func (m *mockLedgerRepository) RecordSale(ctx context.Context, in ledger.SaleInput) (*ledger.SaleResult, error) {
	if m.RecordSaleFunc != nil {
		return m.RecordSaleFunc(ctx, in)
	}
	return nil, errMockUnexpected
}

func (m *mockLedgerRepository) RecordPayment(ctx context.Context, in ledger.PaymentInput) (*ledger.PaymentResult, error) {
	if m.RecordPaymentFunc != nil {
		return m.RecordPaymentFunc(ctx, in)
	}
	return nil, errMockUnexpected
}

// mockClientRepository implementa client.Repository para os testes
type mockClientRepository struct {
	FindByIDFunc       func(ctx context.Context, tenantID, id string) (*client.Client, error)
	CountByTenantFunc  func(ctx context.Context, tenantID string) (int, error)
	ExistsByPhoneFunc      func(ctx context.Context, tenantID, phoneNumber string) (bool, error)
	FindTenantsByPhoneFunc func(ctx context.Context, phoneNumber string) ([]string, error)
}

func (m *mockClientRepository) Create(ctx context.Context, c *client.Client) error { return nil }

func (m *mockClientRepository) FindByID(ctx context.Context, tenantID, id string) (*client.Client, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, tenantID, id)
	}
	return nil, repository.ErrClientNotFound
}

func (m *mockClientRepository) FindByPhone(ctx context.Context, tenantID, phoneNumber string) (*client.Client, error) {
	return nil, repository.ErrClientNotFound
}

func (m *mockClientRepository) FindTenantsByPhone(ctx context.Context, phoneNumber string) ([]string, error) {
	if m.FindTenantsByPhoneFunc != nil {
		return m.FindTenantsByPhoneFunc(ctx, phoneNumber)
	}
	return nil, nil
}

func (m *mockClientRepository) List(ctx context.Context, tenantID string, limit, offset int) ([]*client.Client, error) {
	return nil, nil
}

func (m *mockClientRepository) FindByName(ctx context.Context, tenantID, name string, limit, offset int) ([]*client.Client, error) {
	return nil, nil
}

func (m *mockClientRepository) Update(ctx context.Context, c *client.Client) error { return nil }

func (m *mockClientRepository) UpdateStatus(ctx context.Context, tenantID, id string, status client.Status) error {
	return nil
}

func (m *mockClientRepository) Delete(ctx context.Context, tenantID, id string) error { return nil }

func (m *mockClientRepository) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	if m.CountByTenantFunc != nil {
		return m.CountByTenantFunc(ctx, tenantID)
	}
	return 0, nil
}

func (m *mockClientRepository) ExistsByPhone(ctx context.Context, tenantID, phoneNumber string) (bool, error) {
	if m.ExistsByPhoneFunc != nil {
		return m.ExistsByPhoneFunc(ctx, tenantID, phoneNumber)
	}
	return false, nil
}

// mockInvoiceRepository implementa invoice.Repository para os testes
type mockInvoiceRepository struct {
	FindByIDFunc           func(ctx context.Context, tenantID, id string) (*invoice.Invoice, error)
	CountByTenantSinceFunc func(ctx context.Context, tenantID string, since int64) (int, error)
}

func (m *mockInvoiceRepository) Create(ctx context.Context, i *invoice.Invoice) error { return nil }

func (m *mockInvoiceRepository) FindByID(ctx context.Context, tenantID, id string) (*invoice.Invoice, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, tenantID, id)
	}
	return nil, repository.ErrInvoiceNotFound
}

func (m *mockInvoiceRepository) List(ctx context.Context, tenantID string, limit, offset int) ([]*invoice.Invoice, error) {
	return nil, nil
}

func (m *mockInvoiceRepository) ListByClient(ctx context.Context, tenantID, clientID string) ([]*invoice.Invoice, error) {
	return nil, nil
}

func (m *mockInvoiceRepository) ListByStatus(ctx context.Context, tenantID string, status invoice.Status, limit, offset int) ([]*invoice.Invoice, error) {
	return nil, nil
}

func (m *mockInvoiceRepository) Update(ctx context.Context, i *invoice.Invoice) error { return nil }

func (m *mockInvoiceRepository) UpdateStatus(ctx context.Context, tenantID, id string, status invoice.Status) error {
	return nil
}

func (m *mockInvoiceRepository) Delete(ctx context.Context, tenantID, id string) error { return nil }

func (m *mockInvoiceRepository) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	return 0, nil
}

func (m *mockInvoiceRepository) CountByTenantSince(ctx context.Context, tenantID string, since int64) (int, error) {
	if m.CountByTenantSinceFunc != nil {
		return m.CountByTenantSinceFunc(ctx, tenantID, since)
	}
	return 0, nil
}

func (m *mockInvoiceRepository) SumAmountByClient(ctx context.Context, tenantID, clientID string) (float64, error) {
	return 0, nil
}

func (m *mockInvoiceRepository) SumAmountByTenant(ctx context.Context, tenantID string) (float64, error) {
	return 0, nil
}

func (m *mockInvoiceRepository) CountByStatus(ctx context.Context, tenantID string) (map[invoice.Status]int, error) {
	return nil, nil
}

// mockTenantRepository implementa tenant.Repository para os testes
type mockTenantRepository struct {
	FindByIDFunc     func(ctx context.Context, id string) (*tenant.Tenant, error)
	UpdateStatusFunc func(ctx context.Context, id string, status tenant.Status) error
}

func (m *mockTenantRepository) Create(ctx context.Context, t *tenant.Tenant) error { return nil }

func (m *mockTenantRepository) FindByID(ctx context.Context, id string) (*tenant.Tenant, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, repository.ErrTenantNotFound
}

func (m *mockTenantRepository) FindByDocument(ctx context.Context, document string) (*tenant.Tenant, error) {
	return nil, repository.ErrTenantNotFound
}

func (m *mockTenantRepository) List(ctx context.Context, limit, offset int) ([]*tenant.Tenant, error) {
	return nil, nil
}

func (m *mockTenantRepository) ListAll(ctx context.Context, limit, offset int) ([]*tenant.Tenant, error) {
	return nil, nil
}

func (m *mockTenantRepository) Update(ctx context.Context, t *tenant.Tenant) error { return nil }

func (m *mockTenantRepository) UpdateStatus(ctx context.Context, id string, status tenant.Status) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockTenantRepository) UpdatePlan(ctx context.Context, id string, plan tenant.Plan, limits tenant.Limits) error {
	return nil
}

func (m *mockTenantRepository) SoftDelete(ctx context.Context, id string) error { return nil }

func (m *mockTenantRepository) Restore(ctx context.Context, id string) error { return nil }

func (m *mockTenantRepository) Count(ctx context.Context) (int, error) { return 0, nil }

func (m *mockTenantRepository) Exists(ctx context.Context, id string) (bool, error) {
	return true, nil
}

func (m *mockTenantRepository) SetFeatureFlag(ctx context.Context, tenantID, feature string, enabled bool) error {
	return nil
}

func (m *mockTenantRepository) ListFeatureFlags(ctx context.Context, tenantID string) ([]*tenant.FeatureFlag, error) {
	return nil, nil
}

// mockNotificationRepository implementa notification.Repository para os testes
type mockNotificationRepository struct {
	CreateFunc func(ctx context.Context, n *notification.Notification) error
	created    []*notification.Notification
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	m.created = append(m.created, n)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) List(ctx context.Context, tenantID, userID string, limit, offset int) ([]*notification.Notification, error) {
	return nil, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, tenantID, userID string) (int, error) {
	return 0, nil
}

func (m *mockNotificationRepository) MarkRead(ctx context.Context, tenantID, id string) error {
	return nil
}

func (m *mockNotificationRepository) MarkAllRead(ctx context.Context, tenantID, userID string) error {
	return nil
}

func (m *mockNotificationRepository) Delete(ctx context.Context, tenantID, id string) error {
	return nil
}

// mockUserRepository implementa user.Repository para os testes
type mockUserRepository struct {
	FindByExactEmailFunc  func(ctx context.Context, email string) (*user.User, error)
	FindByEmailsFunc      func(ctx context.Context, emails []string) ([]*user.User, error)
	FindByEmailPrefixFunc func(ctx context.Context, prefix, suffix string) ([]*user.User, error)
	CreateFunc            func(ctx context.Context, u *user.User) error
	UpdatePasswordFunc    func(ctx context.Context, id, hashedPassword string) error
	UpsertProfileFunc     func(ctx context.Context, p *user.Profile) error
	UpsertRoleFunc        func(ctx context.Context, r *user.RoleAssignment) error
	DeleteFunc            func(ctx context.Context, id string) error
	DeleteProfileFunc     func(ctx context.Context, userID string) error

	passwordUpdates []string // IDs que tiveram a senha atualizada
	deletedUsers    []string
	deletedProfiles []string
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, tenantID, email string) (*user.User, error) {
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepository) FindByExactEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByExactEmailFunc != nil {
		return m.FindByExactEmailFunc(ctx, email)
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepository) FindByEmails(ctx context.Context, emails []string) ([]*user.User, error) {
	if m.FindByEmailsFunc != nil {
		return m.FindByEmailsFunc(ctx, emails)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmailPrefix(ctx context.Context, prefix, suffix string) ([]*user.User, error) {
	if m.FindByEmailPrefixFunc != nil {
		return m.FindByEmailPrefixFunc(ctx, prefix, suffix)
	}
	return nil, nil
}

func (m *mockUserRepository) ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) UpdatePassword(ctx context.Context, id, hashedPassword string) error {
	m.passwordUpdates = append(m.passwordUpdates, id)
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, hashedPassword)
	}
	return nil
}

func (m *mockUserRepository) UpdateLastLogin(ctx context.Context, id string) error { return nil }

func (m *mockUserRepository) Delete(ctx context.Context, id string) error {
	m.deletedUsers = append(m.deletedUsers, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	return 0, nil
}

func (m *mockUserRepository) UpsertProfile(ctx context.Context, p *user.Profile) error {
	if m.UpsertProfileFunc != nil {
		return m.UpsertProfileFunc(ctx, p)
	}
	return nil
}

func (m *mockUserRepository) DeleteProfile(ctx context.Context, userID string) error {
	m.deletedProfiles = append(m.deletedProfiles, userID)
	if m.DeleteProfileFunc != nil {
		return m.DeleteProfileFunc(ctx, userID)
	}
	return nil
}

func (m *mockUserRepository) UpsertRole(ctx context.Context, r *user.RoleAssignment) error {
	if m.UpsertRoleFunc != nil {
		return m.UpsertRoleFunc(ctx, r)
	}
	return nil
}

// mockSuperAdminRepository implementa superadmin.Repository para os testes
type mockSuperAdminRepository struct {
	FindByUserIDFunc func(ctx context.Context, userID string) (*superadmin.SuperAdmin, error)

	auditLogs []*superadmin.AuditLog
}

func (m *mockSuperAdminRepository) FindByUserID(ctx context.Context, userID string) (*superadmin.SuperAdmin, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, repository.ErrSuperAdminNotFound
}

func (m *mockSuperAdminRepository) Create(ctx context.Context, sa *superadmin.SuperAdmin) error {
	return nil
}

func (m *mockSuperAdminRepository) List(ctx context.Context, limit, offset int) ([]*superadmin.SuperAdmin, error) {
	return nil, nil
}

func (m *mockSuperAdminRepository) UpdateStatus(ctx context.Context, id string, active bool) error {
	return nil
}

func (m *mockSuperAdminRepository) CreateAuditLog(ctx context.Context, a *superadmin.AuditLog) error {
	m.auditLogs = append(m.auditLogs, a)
	return nil
}

func (m *mockSuperAdminRepository) ListAuditLogs(ctx context.Context, limit, offset int) ([]*superadmin.AuditLog, error) {
	return nil, nil
}

func (m *mockSuperAdminRepository) GetPlatformStats(ctx context.Context) (*superadmin.PlatformStats, error) {
	return &superadmin.PlatformStats{}, nil
}

// mockSmsSender implementa sms.Sender para os testes. O mutex protege o
// registro de envios feitos por goroutines de segundo plano.
type mockSmsSender struct {
	SendFunc func(ctx context.Context, phoneNumber, message string) error

	mu   sync.Mutex
	sent []string // telefones que receberam SMS
}

func (m *mockSmsSender) Send(ctx context.Context, phoneNumber, message string) error {
	m.mu.Lock()
	m.sent = append(m.sent, phoneNumber)
	m.mu.Unlock()

	if m.SendFunc != nil {
		return m.SendFunc(ctx, phoneNumber, message)
	}
	return nil
}

func (m *mockSmsSender) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

// mockNotifier implementa notify.Notifier para os testes
type mockNotifier struct {
	NotifyFunc func(ctx context.Context, title, markdown string) error
}

func (m *mockNotifier) Notify(ctx context.Context, title, markdown string) error {
	if m.NotifyFunc != nil {
		return m.NotifyFunc(ctx, title, markdown)
	}
	return nil
}
