package core_test

import (
	"context"
	"errors"
	"jekomo/internal/auth"
	"jekomo/internal/core"
	"jekomo/internal/core/fake"
	"jekomo/internal/repository"
	tokenIssuer "jekomo/pkg/jwt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Accounts", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.JWTIssuer
		fakeHasher *fake.PasswordHasher
		fakeLogger *zap.SugaredLogger
		ctx        context.Context
		tokenTTL   time.Duration

		accounts *core.Accounts

		fakeErr error
		userID  string
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeHasher = new(fake.PasswordHasher)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()
		tokenTTL = time.Hour

		accounts = core.NewAccounts(fakeLogger, fakeRepo, fakeJWT, fakeHasher, tokenTTL)

		fakeErr = errors.New("fake error")
		userID = uuid.NewString()
	})

	Describe("Register", func() {
		var (
			msg    core.AuthMessage
			result core.Result[core.PublicView]
			err    error
		)

		BeforeEach(func() {
			msg = core.AuthMessage{Username: "alice", Password: "pw1"}
			fakeHasher.HashReturns("hashed-pw1", nil)
		})

		JustBeforeEach(func() {
			result, err = accounts.Register(ctx, msg)
		})

		When("the username is free", func() {
			It("should create a user with the default role and a hashed password", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Success).To(BeTrue())
				Expect(result.Message).To(Equal("User created successfully"))
				Expect(result.Data).To(Equal(&core.PublicView{Username: "alice"}))

				Expect(fakeHasher.HashCallCount()).To(Equal(1))
				Expect(fakeHasher.HashArgsForCall(0)).To(Equal("pw1"))

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, user := fakeRepo.CreateUserArgsForCall(0)
				Expect(user.Username).To(Equal("alice"))
				Expect(user.PasswordHash).To(Equal("hashed-pw1"))
				Expect(user.Role).To(Equal(repository.RoleUser))
				Expect(user.Sessions).To(BeEmpty())
				_, parseErr := uuid.Parse(user.ID)
				Expect(parseErr).NotTo(HaveOccurred())
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.ErrUsernameTaken)
			})

			It("should fail without an error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Success).To(BeFalse())
				Expect(result.Message).To(Equal("Failed to create user"))
				Expect(result.Reason).To(Equal(core.ReasonDuplicateUsername))
				Expect(result.Data).To(BeNil())
			})
		})

		When("hashing fails", func() {
			BeforeEach(func() {
				fakeHasher.HashReturns("", fakeErr)
			})

			It("should return an error and persist nothing", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(result.Success).To(BeFalse())
			})
		})
	})

	Describe("Login", func() {
		var (
			msg      core.AuthMessage
			result   core.Result[core.LoginView]
			err      error
			genToken *jwt.Token
		)

		BeforeEach(func() {
			msg = core.AuthMessage{Username: "alice", Password: "pw1"}
			genToken = jwt.New(jwt.SigningMethodHS512)

			fakeRepo.GetUserByUsernameReturns(repository.User{
				ID:           userID,
				Username:     "alice",
				PasswordHash: "hashed-pw1",
				Role:         repository.RoleUser,
				Sessions:     []repository.Session{{ID: 1, UserID: userID, Token: "older.session.token"}},
			}, nil)
			fakeHasher.VerifyReturns(true)
			fakeJWT.GenerateReturns(genToken)
			fakeJWT.SignReturns("signed.token.value", nil)
		})

		JustBeforeEach(func() {
			result, err = accounts.Login(ctx, msg)
		})

		When("the credentials match", func() {
			It("should issue a token and append it to the sessions", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Success).To(BeTrue())
				Expect(result.Message).To(Equal("User logged in successfully"))
				Expect(result.Data.Token).To(Equal("signed.token.value"))
				Expect(result.Data.User).To(Equal(core.SessionView{
					Username: "alice",
					Role:     repository.RoleUser,
					Tokens:   []string{"older.session.token", "signed.token.value"},
				}))

				plaintext, hash := fakeHasher.VerifyArgsForCall(0)
				Expect(plaintext).To(Equal("pw1"))
				Expect(hash).To(Equal("hashed-pw1"))

				Expect(fakeJWT.GenerateArgsForCall(0)).To(Equal(tokenIssuer.TokenInfo{
					UserName:   "alice",
					Subject:    userID,
					Expiration: tokenTTL,
				}))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))

				Expect(fakeRepo.AddTokenCallCount()).To(Equal(1))
				_, argID, argToken := fakeRepo.AddTokenArgsForCall(0)
				Expect(argID).To(Equal(userID))
				Expect(argToken).To(Equal("signed.token.value"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should fail with invalid credentials", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Success).To(BeFalse())
				Expect(result.Message).To(Equal("Invalid username or password"))
				Expect(result.Reason).To(Equal(core.ReasonInvalidCredentials))
				Expect(fakeRepo.AddTokenCallCount()).To(Equal(0))
			})
		})

		When("the password does not match", func() {
			BeforeEach(func() {
				fakeHasher.VerifyReturns(false)
			})

			It("should fail with invalid credentials", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Success).To(BeFalse())
				Expect(result.Message).To(Equal("Invalid username or password"))
				Expect(fakeJWT.GenerateCallCount()).To(Equal(0))
				Expect(fakeRepo.AddTokenCallCount()).To(Equal(0))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return an error and store no token", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.AddTokenCallCount()).To(Equal(0))
			})
		})

		When("storing the token fails", func() {
			BeforeEach(func() {
				fakeRepo.AddTokenReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(result.Success).To(BeFalse())
			})
		})

		When("the store lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Logout", func() {
		var (
			caller *auth.Identity
			msg    core.LogoutMessage
			result core.Result[core.None]
			err    error
		)

		BeforeEach(func() {
			caller = &auth.Identity{UserID: userID, Token: "caller.token.value", Role: repository.RoleUser}
			msg = core.LogoutMessage{ID: uuid.NewString(), Token: "body.token.value"}
			fakeRepo.RemoveTokenReturns(1, nil)
		})

		JustBeforeEach(func() {
			result, err = accounts.Logout(ctx, caller, msg)
		})

		When("the caller is authenticated", func() {
			It("should remove the caller's own token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Success).To(BeTrue())
				Expect(result.Message).To(Equal("User logged out successfully"))
				Expect(result.Data).To(BeNil())

				_, argID, argToken := fakeRepo.RemoveTokenArgsForCall(0)
				Expect(argID).To(Equal(userID))
				Expect(argToken).To(Equal("caller.token.value"))
			})
		})

		When("there is no caller", func() {
			BeforeEach(func() {
				caller = nil
			})

			It("should fall back to the request body", func() {
				Expect(result.Success).To(BeTrue())
				_, argID, argToken := fakeRepo.RemoveTokenArgsForCall(0)
				Expect(argID).To(Equal(msg.ID))
				Expect(argToken).To(Equal("body.token.value"))
			})
		})

		When("nothing identifies the session", func() {
			BeforeEach(func() {
				caller = nil
				msg = core.LogoutMessage{}
			})

			It("should fail without touching the store", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Success).To(BeFalse())
				Expect(fakeRepo.RemoveTokenCallCount()).To(Equal(0))
			})
		})

		When("the token is not held", func() {
			BeforeEach(func() {
				fakeRepo.RemoveTokenReturns(0, nil)
			})

			It("should report failure", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Success).To(BeFalse())
				Expect(result.Message).To(Equal("Logout Failed"))
				Expect(result.Reason).To(Equal(core.ReasonNotModified))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.RemoveTokenReturns(0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(result.Success).To(BeFalse())
			})
		})
	})

	Describe("LogoutAll", func() {
		var (
			caller *auth.Identity
			msg    core.LogoutMessage
			result core.Result[core.None]
			err    error
		)

		BeforeEach(func() {
			caller = &auth.Identity{UserID: userID, Role: repository.RoleAdmin}
			msg = core.LogoutMessage{}
			fakeRepo.ClearTokensReturns(3, nil)
		})

		JustBeforeEach(func() {
			result, err = accounts.LogoutAll(ctx, caller, msg)
		})

		It("should clear every session of the caller", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Success).To(BeTrue())
			Expect(result.Message).To(Equal("User logged out from all successfully"))

			_, argID := fakeRepo.ClearTokensArgsForCall(0)
			Expect(argID).To(Equal(userID))
		})

		When("there were no sessions", func() {
			BeforeEach(func() {
				fakeRepo.ClearTokensReturns(0, nil)
			})

			It("should report failure", func() {
				Expect(result.Success).To(BeFalse())
				Expect(result.Message).To(Equal("Logout Failed"))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.ClearTokensReturns(0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("role changes", func() {
		var (
			caller   *auth.Identity
			targetID string
		)

		BeforeEach(func() {
			caller = &auth.Identity{UserID: userID, Role: repository.RoleAdmin}
			targetID = uuid.NewString()
			fakeRepo.SetRoleReturns(1, nil)
		})

		It("should grant admin to the target user", func() {
			result, err := accounts.GrantAdmin(ctx, caller, core.RoleMessage{ID: targetID})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Success).To(BeTrue())
			Expect(result.Message).To(Equal("User role switched to admin successfully"))

			_, argID, role := fakeRepo.SetRoleArgsForCall(0)
			Expect(argID).To(Equal(targetID))
			Expect(role).To(Equal(repository.RoleAdmin))
		})

		It("should revoke admin from the target user", func() {
			result, err := accounts.RevokeAdmin(ctx, caller, core.RoleMessage{ID: targetID})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Success).To(BeTrue())
			Expect(result.Message).To(Equal("User role switched to user successfully"))

			_, argID, role := fakeRepo.SetRoleArgsForCall(0)
			Expect(argID).To(Equal(targetID))
			Expect(role).To(Equal(repository.RoleUser))
		})

		It("should target the caller when no id is given", func() {
			_, err := accounts.RevokeAdmin(ctx, caller, core.RoleMessage{})
			Expect(err).NotTo(HaveOccurred())

			_, argID, _ := fakeRepo.SetRoleArgsForCall(0)
			Expect(argID).To(Equal(userID))
		})

		It("should report failure when nothing changed", func() {
			fakeRepo.SetRoleReturns(0, nil)

			result, err := accounts.GrantAdmin(ctx, caller, core.RoleMessage{ID: targetID})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Success).To(BeFalse())
			Expect(result.Message).To(Equal("Failed to change role"))
		})

		It("should fail without a target", func() {
			result, err := accounts.GrantAdmin(ctx, nil, core.RoleMessage{})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Success).To(BeFalse())
			Expect(fakeRepo.SetRoleCallCount()).To(Equal(0))
		})

		It("should return store errors", func() {
			fakeRepo.SetRoleReturns(0, fakeErr)

			_, err := accounts.GrantAdmin(ctx, caller, core.RoleMessage{ID: targetID})
			Expect(err).To(MatchError(fakeErr))
		})
	})
})
