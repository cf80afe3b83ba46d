package repository_test

import (
	"context"
	"errors"
	"jekomo/internal/db"
	"jekomo/internal/repository"
	"jekomo/internal/repository/fake"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UserRepository", func() {
	var (
		repo        *repository.UserRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
		userID      string
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewUserRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
		userID = uuid.NewString()
	})

	Describe("MigrateAndSeed", func() {
		var (
			err   error
			seeds []repository.User
		)

		BeforeEach(func() {
			seeds = []repository.User{
				{ID: uuid.NewString(), Username: "root", PasswordHash: "hash", Role: repository.RoleAdmin},
			}
		})

		JustBeforeEach(func() {
			err = repo.MigrateAndSeed(ctx, seeds...)
		})

		When("migration succeeds", func() {
			It("should migrate tables and seed users", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(2))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Session{}))

				Expect(fakeStorage.InsertCallCount()).To(Equal(1))
				_, record := fakeStorage.InsertArgsForCall(0)
				Expect(record).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(record.(*repository.User).Username).To(Equal("root"))
			})
		})

		When("the seeded user already exists", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(db.ErrDuplicate)
			})

			It("should skip it", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})

		When("seeding data fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(errors.New("seed error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(ContainSubstring("seed database")))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		BeforeEach(func() {
			user = repository.User{
				ID:           userID,
				Username:     "alice",
				PasswordHash: "hashed_password",
				Role:         repository.RoleUser,
			}
		})

		JustBeforeEach(func() {
			err = repo.CreateUser(ctx, user)
		})

		When("the insert succeeds", func() {
			It("should store the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.InsertCallCount()).To(Equal(1))
				_, record := fakeStorage.InsertArgsForCall(0)
				Expect(record).To(Equal(&user))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(db.ErrDuplicate)
			})

			It("should return username taken error", func() {
				Expect(err).To(MatchError(repository.ErrUsernameTaken))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(repository.ErrUsernameTaken))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		var (
			user     repository.User
			err      error
			testUser repository.User
		)

		BeforeEach(func() {
			testUser = repository.User{
				ID:           userID,
				Username:     "alice",
				PasswordHash: "hashed_password",
				Role:         repository.RoleUser,
				Sessions:     []repository.Session{{ID: 1, UserID: userID, Token: "a.b.c"}},
			}
		})

		JustBeforeEach(func() {
			user, err = repo.GetUserByUsername(ctx, "alice")
		})

		When("user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any, preloads ...string) error {
					user := dest.(*repository.User)
					*user = testUser
					return nil
				}
			})

			It("should return the user with its sessions", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Username).To(Equal("alice"))
				Expect(user.Tokens()).To(Equal([]string{"a.b.c"}))

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, col, val, _, preloads := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("username"))
				Expect(val).To(Equal("alice"))
				Expect(preloads).To(ConsistOf("Sessions"))
			})
		})

		When("user doesn't exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserByID", func() {
		It("should look the user up by id", func() {
			_, err := repo.GetUserByID(ctx, userID)
			Expect(err).NotTo(HaveOccurred())

			_, col, val, _, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(col).To(Equal("id"))
			Expect(val).To(Equal(userID))
		})
	})

	Describe("AddToken", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.AddToken(ctx, userID, "a.b.c")
		})

		It("should insert one session row", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStorage.InsertCallCount()).To(Equal(1))
			_, record := fakeStorage.InsertArgsForCall(0)
			Expect(record).To(Equal(&repository.Session{UserID: userID, Token: "a.b.c"}))
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("RemoveToken", func() {
		var (
			removed int64
			err     error
		)

		JustBeforeEach(func() {
			removed, err = repo.RemoveToken(ctx, userID, "a.b.c")
		})

		When("the token is held", func() {
			BeforeEach(func() {
				fakeStorage.DeleteWhereReturns(1, nil)
			})

			It("should delete by user and token in one statement", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(removed).To(Equal(int64(1)))

				Expect(fakeStorage.DeleteWhereCallCount()).To(Equal(1))
				_, model, query, args := fakeStorage.DeleteWhereArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Session{}))
				Expect(query).To(Equal("user_id = ? AND token = ?"))
				Expect(args).To(Equal([]any{userID, "a.b.c"}))
			})
		})

		When("the token is not held", func() {
			BeforeEach(func() {
				fakeStorage.DeleteWhereReturns(0, nil)
			})

			It("should report nothing removed without an error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(removed).To(BeZero())
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.DeleteWhereReturns(0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ClearTokens", func() {
		BeforeEach(func() {
			fakeStorage.DeleteWhereReturns(3, nil)
		})

		It("should delete every session of the user", func() {
			removed, err := repo.ClearTokens(ctx, userID)
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(Equal(int64(3)))

			_, model, query, args := fakeStorage.DeleteWhereArgsForCall(0)
			Expect(model).To(BeAssignableToTypeOf(&repository.Session{}))
			Expect(query).To(Equal("user_id = ?"))
			Expect(args).To(Equal([]any{userID}))
		})
	})

	Describe("SetRole", func() {
		var (
			updated int64
			err     error
		)

		JustBeforeEach(func() {
			updated, err = repo.SetRole(ctx, userID, repository.RoleAdmin)
		})

		When("the role changes", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(1, nil)
			})

			It("should update only when the role differs", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(updated).To(Equal(int64(1)))

				_, model, column, value, query, args := fakeStorage.UpdateWhereArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(column).To(Equal("role"))
				Expect(value).To(Equal("admin"))
				Expect(query).To(Equal("id = ? AND role <> ?"))
				Expect(args).To(Equal([]any{userID, "admin"}))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
