package auth_test

import (
	"context"
	"errors"
	"jekomo/internal/auth"
	"jekomo/internal/auth/fake"
	"jekomo/internal/repository"
	tokenIssuer "jekomo/pkg/jwt"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Policy", func() {
	var (
		fakeVerifier *fake.TokenVerifier
		fakeUsers    *fake.UserLookup
		policy       *auth.Policy
		ctx          context.Context
		userID       string
		token        string
		fakeErr      error
	)

	BeforeEach(func() {
		fakeVerifier = new(fake.TokenVerifier)
		fakeUsers = new(fake.UserLookup)
		policy = auth.NewPolicy(fakeVerifier, fakeUsers)
		ctx = context.Background()
		userID = uuid.NewString()
		token = "header.payload.signature"
		fakeErr = errors.New("fake error")

		fakeVerifier.ValidateReturns(tokenIssuer.Claims{Subject: userID, UserName: "alice"}, nil)
		fakeUsers.GetUserByIDReturns(repository.User{
			ID:       userID,
			Username: "alice",
			Role:     repository.RoleUser,
			Sessions: []repository.Session{{ID: 1, UserID: userID, Token: token}},
		}, nil)
	})

	Describe("Authenticate", func() {
		var (
			header   string
			identity auth.Identity
			err      error
		)

		BeforeEach(func() {
			header = "Bearer " + token
		})

		JustBeforeEach(func() {
			identity, err = policy.Authenticate(ctx, header)
		})

		When("the token is valid and active", func() {
			It("should resolve the identity", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(identity).To(Equal(auth.Identity{
					UserID:   userID,
					Username: "alice",
					Role:     repository.RoleUser,
					Token:    token,
				}))

				Expect(fakeVerifier.ValidateArgsForCall(0)).To(Equal(token))
				_, argID := fakeUsers.GetUserByIDArgsForCall(0)
				Expect(argID).To(Equal(userID))
			})
		})

		When("the token fails verification", func() {
			BeforeEach(func() {
				fakeVerifier.ValidateReturns(tokenIssuer.Claims{}, tokenIssuer.ErrTokenExpired)
			})

			It("should be unauthorized", func() {
				Expect(err).To(MatchError(auth.ErrUnauthorized))
				Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
				Expect(fakeUsers.GetUserByIDCallCount()).To(Equal(0))
			})
		})

		When("the token subject no longer exists", func() {
			BeforeEach(func() {
				fakeUsers.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should be unauthorized", func() {
				Expect(err).To(MatchError(auth.ErrUnauthorized))
			})
		})

		When("the token was revoked", func() {
			BeforeEach(func() {
				fakeUsers.GetUserByIDReturns(repository.User{
					ID:       userID,
					Username: "alice",
					Role:     repository.RoleUser,
					Sessions: []repository.Session{{ID: 2, UserID: userID, Token: "other.session.token"}},
				}, nil)
			})

			It("should be unauthorized", func() {
				Expect(err).To(MatchError(auth.ErrUnauthorized))
			})
		})

		When("the user lookup fails", func() {
			BeforeEach(func() {
				fakeUsers.GetUserByIDReturns(repository.User{}, fakeErr)
			})

			It("should return an internal error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(auth.ErrUnauthorized))
			})
		})
	})

	Describe("Authenticate with a malformed header", func() {
		DescribeTable("rejecting the request",
			func(value string) {
				_, err := policy.Authenticate(ctx, value)
				Expect(err).To(MatchError(auth.ErrUnauthorized))
				Expect(fakeVerifier.ValidateCallCount()).To(Equal(0))
			},
			Entry("empty", ""),
			Entry("no scheme", "header.payload.signature"),
			Entry("wrong scheme", "Basic header.payload.signature"),
			Entry("scheme only", "Bearer "),
		)
	})

	Describe("Authorize", func() {
		var user, admin auth.Identity

		BeforeEach(func() {
			user = auth.Identity{UserID: userID, Role: repository.RoleUser}
			admin = auth.Identity{UserID: userID, Role: repository.RoleAdmin}
		})

		DescribeTable("role rules",
			func(op auth.Operation, userAllowed, adminAllowed bool) {
				check := func(identity auth.Identity, allowed bool) {
					err := policy.Authorize(identity, op)
					if allowed {
						Expect(err).NotTo(HaveOccurred())
					} else {
						Expect(err).To(MatchError(auth.ErrForbidden))
					}
				}
				check(user, userAllowed)
				check(admin, adminAllowed)
			},
			Entry("register", auth.OpRegister, true, true),
			Entry("login", auth.OpLogin, true, true),
			Entry("logout", auth.OpLogout, true, true),
			Entry("logout all", auth.OpLogoutAll, false, true),
			Entry("grant admin", auth.OpGrantAdmin, false, true),
			Entry("revoke admin", auth.OpRevokeAdmin, false, true),
		)
	})

	Describe("Protected", func() {
		It("should require authentication for session and role operations only", func() {
			Expect(policy.Protected(auth.OpRegister)).To(BeFalse())
			Expect(policy.Protected(auth.OpLogin)).To(BeFalse())
			Expect(policy.Protected(auth.OpLogout)).To(BeTrue())
			Expect(policy.Protected(auth.OpLogoutAll)).To(BeTrue())
			Expect(policy.Protected(auth.OpGrantAdmin)).To(BeTrue())
			Expect(policy.Protected(auth.OpRevokeAdmin)).To(BeTrue())
		})
	})
})

var _ = Describe("Identity context", func() {
	It("should round-trip the identity", func() {
		identity := auth.Identity{UserID: "id", Username: "alice", Role: repository.RoleAdmin, Token: "t"}
		ctx := auth.WithIdentity(context.Background(), identity)

		got, ok := auth.IdentityFrom(ctx)
		Expect(ok).To(BeTrue())
		Expect(got).To(Equal(identity))
	})

	It("should report a missing identity", func() {
		_, ok := auth.IdentityFrom(context.Background())
		Expect(ok).To(BeFalse())
	})
})
