package core_test

import (
	"context"
	"jekomo/internal/auth"
	"jekomo/internal/core"
	"jekomo/internal/repository"
	tokenIssuer "jekomo/pkg/jwt"
	"jekomo/pkg/password"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("account lifecycle", func() {
	var (
		ctx      context.Context
		store    *repository.MemoryRepository
		jwtSvc   *tokenIssuer.JWTService
		accounts *core.Accounts
		policy   *auth.Policy
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = repository.NewMemoryRepository()
		jwtSvc = tokenIssuer.NewJWTService([]byte("scenario-secret"))
		accounts = core.NewAccounts(zap.NewNop().Sugar(), store, jwtSvc, password.NewBcrypt(bcrypt.MinCost), time.Hour)
		policy = auth.NewPolicy(jwtSvc, store)
	})

	tokensOf := func(username string) []string {
		user, err := store.GetUserByUsername(ctx, username)
		Expect(err).NotTo(HaveOccurred())
		return user.Tokens()
	}

	login := func(username, pw string) string {
		result, err := accounts.Login(ctx, core.AuthMessage{Username: username, Password: pw})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Success).To(BeTrue())
		return result.Data.Token
	}

	It("should register, log in, and log out alice", func() {
		registered, err := accounts.Register(ctx, core.AuthMessage{Username: "alice", Password: "pw1"})
		Expect(err).NotTo(HaveOccurred())
		Expect(registered.Success).To(BeTrue())
		Expect(registered.Data).To(Equal(&core.PublicView{Username: "alice"}))

		loggedIn, err := accounts.Login(ctx, core.AuthMessage{Username: "alice", Password: "pw1"})
		Expect(err).NotTo(HaveOccurred())
		Expect(loggedIn.Success).To(BeTrue())
		Expect(loggedIn.Data.User.Username).To(Equal("alice"))
		Expect(loggedIn.Data.User.Role).To(Equal(repository.RoleUser))
		token := loggedIn.Data.Token
		Expect(loggedIn.Data.User.Tokens).To(Equal([]string{token}))

		wrong, err := accounts.Login(ctx, core.AuthMessage{Username: "alice", Password: "wrong"})
		Expect(err).NotTo(HaveOccurred())
		Expect(wrong.Success).To(BeFalse())

		identity, err := policy.Authenticate(ctx, "Bearer "+token)
		Expect(err).NotTo(HaveOccurred())

		out, err := accounts.Logout(ctx, &identity, core.LogoutMessage{})
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Success).To(BeTrue())

		again, err := accounts.Logout(ctx, &identity, core.LogoutMessage{})
		Expect(err).NotTo(HaveOccurred())
		Expect(again.Success).To(BeFalse())
	})

	It("should reject a second registration of the same username", func() {
		_, err := accounts.Register(ctx, core.AuthMessage{Username: "alice", Password: "pw1"})
		Expect(err).NotTo(HaveOccurred())

		result, err := accounts.Register(ctx, core.AuthMessage{Username: "alice", Password: "other"})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Success).To(BeFalse())
		Expect(result.Message).To(Equal("Failed to create user"))

		user, err := store.GetUserByUsername(ctx, "alice")
		Expect(err).NotTo(HaveOccurred())
		Expect(password.NewBcrypt(bcrypt.MinCost).Verify("pw1", user.PasswordHash)).To(BeTrue())
	})

	It("should never store or return the plaintext password", func() {
		_, err := accounts.Register(ctx, core.AuthMessage{Username: "alice", Password: "pw1"})
		Expect(err).NotTo(HaveOccurred())

		user, err := store.GetUserByUsername(ctx, "alice")
		Expect(err).NotTo(HaveOccurred())
		Expect(user.PasswordHash).NotTo(Equal("pw1"))
		Expect(user.PasswordHash).NotTo(BeEmpty())
	})

	Context("with a registered user", func() {
		BeforeEach(func() {
			_, err := accounts.Register(ctx, core.AuthMessage{Username: "alice", Password: "pw1"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should grow the session set by one distinct token per login", func() {
			first := login("alice", "pw1")
			second := login("alice", "pw1")

			Expect(first).NotTo(Equal(second))
			Expect(tokensOf("alice")).To(Equal([]string{first, second}))
		})

		It("should remove exactly the logged out token", func() {
			a := login("alice", "pw1")
			b := login("alice", "pw1")

			identity, err := policy.Authenticate(ctx, "Bearer "+b)
			Expect(err).NotTo(HaveOccurred())

			result, err := accounts.Logout(ctx, &identity, core.LogoutMessage{})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Success).To(BeTrue())
			Expect(tokensOf("alice")).To(Equal([]string{a}))
		})

		It("should leave the set unchanged for a token it does not hold", func() {
			a := login("alice", "pw1")
			user, err := store.GetUserByUsername(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())

			result, err := accounts.Logout(ctx, nil, core.LogoutMessage{ID: user.ID, Token: "not.held.token"})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Success).To(BeFalse())
			Expect(tokensOf("alice")).To(Equal([]string{a}))
		})

		It("should clear every session on logout all", func() {
			login("alice", "pw1")
			token := login("alice", "pw1")

			identity, err := policy.Authenticate(ctx, "Bearer "+token)
			Expect(err).NotTo(HaveOccurred())

			result, err := accounts.LogoutAll(ctx, &identity, core.LogoutMessage{})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Success).To(BeTrue())
			Expect(tokensOf("alice")).To(BeEmpty())
		})

		It("should reject a revoked token even though its signature is still valid", func() {
			token := login("alice", "pw1")

			identity, err := policy.Authenticate(ctx, "Bearer "+token)
			Expect(err).NotTo(HaveOccurred())

			_, err = accounts.Logout(ctx, &identity, core.LogoutMessage{})
			Expect(err).NotTo(HaveOccurred())

			_, err = jwtSvc.Validate(token)
			Expect(err).NotTo(HaveOccurred())

			_, err = policy.Authenticate(ctx, "Bearer "+token)
			Expect(err).To(MatchError(auth.ErrUnauthorized))
		})

		It("should not change the role on login or logout", func() {
			token := login("alice", "pw1")
			identity, err := policy.Authenticate(ctx, "Bearer "+token)
			Expect(err).NotTo(HaveOccurred())
			_, err = accounts.Logout(ctx, &identity, core.LogoutMessage{})
			Expect(err).NotTo(HaveOccurred())

			user, err := store.GetUserByUsername(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Role).To(Equal(repository.RoleUser))
		})

		It("should promote and demote through explicit role changes", func() {
			user, err := store.GetUserByUsername(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())

			granted, err := accounts.GrantAdmin(ctx, nil, core.RoleMessage{ID: user.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(granted.Success).To(BeTrue())

			repeated, err := accounts.GrantAdmin(ctx, nil, core.RoleMessage{ID: user.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(repeated.Success).To(BeFalse())

			revoked, err := accounts.RevokeAdmin(ctx, nil, core.RoleMessage{ID: user.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(revoked.Success).To(BeTrue())
		})
	})
})
