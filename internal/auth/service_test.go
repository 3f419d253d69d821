package auth

import (
	"context"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

// Mock UserRepository for testing
type mockUserRepository struct {
	passwordHash string
	users        map[int64]*User
	logins       []LoginAttempt
	lastTouched  int64
}

func newMockUserRepository() *mockUserRepository {
	hash, _ := bcrypt.GenerateFromPassword([]byte("senha-correta"), bcrypt.MinCost)
	return &mockUserRepository{
		passwordHash: string(hash),
		users: map[int64]*User{
			1: {
				ID:          1,
				Email:       "juridico@empresa.com.br",
				Name:        "Setor Jurídico",
				Profile:     "juridico",
				Permissions: []string{PermViewProcesses, PermFinalizeProcesses},
				IsActive:    true,
			},
		},
	}
}

func (m *mockUserRepository) GetPasswordForEmail(ctx context.Context, email string) (string, int64, bool, error) {
	for id, u := range m.users {
		if u.Email == email {
			return m.passwordHash, id, u.IsActive, nil
		}
	}
	return "", 0, false, ErrInvalidCredentials
}

func (m *mockUserRepository) GetUserWithPermissions(ctx context.Context, userID int64) (*User, error) {
	u, exists := m.users[userID]
	if !exists {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (m *mockUserRepository) RecordLogin(ctx context.Context, attempt LoginAttempt) error {
	m.logins = append(m.logins, attempt)
	return nil
}

func (m *mockUserRepository) TouchLastLogin(ctx context.Context, userID int64) error {
	m.lastTouched = userID
	return nil
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		svc      *Service
		mockRepo *mockUserRepository
		tokenGen *JWTTokenGenerator
		ctx      context.Context
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockUserRepository()
		tokenGen = NewJWTTokenGenerator("test-secret", 15*time.Minute)
		svc = NewService(mockRepo, tokenGen, bcrypt.MinCost)
		ctx = context.Background()
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.Context("with valid credentials", func() {
			ginkgo.It("returns a token pair and records the login", func() {
				tokens, err := svc.Authenticate(ctx, LoginDTO{
					Email:    "juridico@empresa.com.br",
					Password: "senha-correta",
				}, "10.0.0.1", "test-agent")

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(tokens.AccessToken).ToNot(gomega.BeEmpty())
				gomega.Expect(tokens.RefreshToken).ToNot(gomega.BeEmpty())

				claims, err := tokenGen.ValidateToken(tokens.AccessToken)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(claims.UserID).To(gomega.Equal("1"))
				gomega.Expect(claims.Email).To(gomega.Equal("juridico@empresa.com.br"))
				gomega.Expect(claims.Profile).To(gomega.Equal("juridico"))

				gomega.Expect(mockRepo.logins).To(gomega.HaveLen(1))
				gomega.Expect(mockRepo.logins[0].Success).To(gomega.BeTrue())
				gomega.Expect(mockRepo.logins[0].IP).To(gomega.Equal("10.0.0.1"))
				gomega.Expect(mockRepo.lastTouched).To(gomega.Equal(int64(1)))
			})
		})

		ginkgo.Context("with a wrong password", func() {
			ginkgo.It("rejects and records the failed attempt", func() {
				_, err := svc.Authenticate(ctx, LoginDTO{
					Email:    "juridico@empresa.com.br",
					Password: "senha-errada",
				}, "10.0.0.1", "test-agent")

				gomega.Expect(err).To(gomega.MatchError(ErrInvalidCredentials))
				gomega.Expect(mockRepo.logins).To(gomega.HaveLen(1))
				gomega.Expect(mockRepo.logins[0].Success).To(gomega.BeFalse())
			})
		})

		ginkgo.Context("with an unknown email", func() {
			ginkgo.It("rejects without leaking the reason", func() {
				_, err := svc.Authenticate(ctx, LoginDTO{
					Email:    "ninguem@empresa.com.br",
					Password: "qualquer",
				}, "10.0.0.1", "test-agent")

				gomega.Expect(err).To(gomega.MatchError(ErrInvalidCredentials))
			})
		})

		ginkgo.Context("with an inactive account", func() {
			ginkgo.It("rejects even with the right password", func() {
				mockRepo.users[1].IsActive = false

				_, err := svc.Authenticate(ctx, LoginDTO{
					Email:    "juridico@empresa.com.br",
					Password: "senha-correta",
				}, "10.0.0.1", "test-agent")

				gomega.Expect(err).To(gomega.MatchError(ErrUserInactive))
			})
		})

		ginkgo.Context("with a missing field", func() {
			ginkgo.It("fails validation before hitting the repository", func() {
				_, err := svc.Authenticate(ctx, LoginDTO{Email: "juridico@empresa.com.br"}, "", "")

				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(mockRepo.logins).To(gomega.BeEmpty())
			})
		})
	})

	ginkgo.Describe("RefreshTokens", func() {
		ginkgo.It("issues a fresh pair for a valid refresh token", func() {
			tokens, err := svc.Authenticate(ctx, LoginDTO{
				Email:    "juridico@empresa.com.br",
				Password: "senha-correta",
			}, "10.0.0.1", "test-agent")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			refreshed, err := svc.RefreshTokens(ctx, tokens.RefreshToken)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(refreshed.AccessToken).ToNot(gomega.BeEmpty())
			gomega.Expect(refreshed.RefreshToken).ToNot(gomega.BeEmpty())
		})

		ginkgo.It("rejects a token once the account is deactivated", func() {
			tokens, err := svc.Authenticate(ctx, LoginDTO{
				Email:    "juridico@empresa.com.br",
				Password: "senha-correta",
			}, "10.0.0.1", "test-agent")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			mockRepo.users[1].IsActive = false

			_, err = svc.RefreshTokens(ctx, tokens.RefreshToken)
			gomega.Expect(err).To(gomega.MatchError(ErrUserInactive))
		})

		ginkgo.It("rejects garbage tokens", func() {
			_, err := svc.RefreshTokens(ctx, "not-a-token")

			gomega.Expect(err).To(gomega.MatchError(ErrInvalidToken))
		})
	})

	ginkgo.Describe("ValidateAccessToken", func() {
		ginkgo.It("rejects an expired token", func() {
			expiredGen := &JWTTokenGenerator{
				Secret:          []byte("test-secret"),
				AccessTokenTTL:  -time.Minute,
				RefreshTokenTTL: -time.Minute,
			}
			token, err := expiredGen.GenerateAccessToken(1, "juridico@empresa.com.br", "juridico")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = svc.ValidateAccessToken(token)
			gomega.Expect(err).To(gomega.MatchError(ErrTokenExpired))
		})

		ginkgo.It("rejects a token signed with a different secret", func() {
			otherGen := NewJWTTokenGenerator("other-secret", 15*time.Minute)
			token, err := otherGen.GenerateAccessToken(1, "juridico@empresa.com.br", "juridico")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = svc.ValidateAccessToken(token)
			gomega.Expect(err).To(gomega.MatchError(ErrInvalidToken))
		})
	})

	ginkgo.Describe("HashPassword", func() {
		ginkgo.It("produces a verifiable bcrypt hash", func() {
			hash, err := svc.HashPassword("senha-forte")

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(bcrypt.CompareHashAndPassword([]byte(hash), []byte("senha-forte"))).To(gomega.Succeed())
		})
	})
})

var _ = ginkgo.Describe("DefaultPermissionChecker", func() {
	checker := NewPermissionChecker()
	ctx := context.Background()

	ginkgo.It("passes a user holding the permission", func() {
		ok, err := checker.HasPermission(ctx, []string{PermViewProcesses}, PermViewProcesses)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(ok).To(gomega.BeTrue())
	})

	ginkgo.It("lets admin short-circuit every check", func() {
		ok, err := checker.HasPermission(ctx, []string{PermAdmin}, PermFinalizeProcesses)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(checker.CanViewAllProcesses([]string{PermAdmin})).To(gomega.BeTrue())
		gomega.Expect(checker.IsAdmin([]string{PermAdmin})).To(gomega.BeTrue())
	})

	ginkgo.It("denies a user without the permission", func() {
		ok, err := checker.HasPermission(ctx, []string{PermViewProcesses}, PermFinalizeProcesses)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(ok).To(gomega.BeFalse())
		gomega.Expect(checker.CanViewAllProcesses([]string{PermViewProcesses})).To(gomega.BeFalse())
		gomega.Expect(checker.IsAdmin(nil)).To(gomega.BeFalse())
	})
})
