package unitest_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unitest/unitest"
	"github.com/unitest/unitest/testutils"
)

var _ = Describe("Suite", func() {
	Describe("New", func() {
		It("should keep the given name", func() {
			suite, _ := testutils.NewRecordedSuite("calculator")
			Expect(suite.Run().Suite).To(Equal("calculator"))
		})

		It("should fall back to the default name", func() {
			suite, buf := testutils.NewRecordedSuite("")
			result := suite.Run()

			Expect(result.Suite).To(Equal(unitest.DefaultSuiteName))
			Expect(buf.String()).To(ContainSubstring("Suite Unnamed Suite"))
		})
	})

	Describe("Test", func() {
		It("should run tests in registration order", func() {
			suite, _ := testutils.NewRecordedSuite("ordered")
			var trace []string
			for _, name := range []string{"first", "second", "third"} {
				name := name
				suite.Test(name, func() { trace = append(trace, name) })
			}

			result := suite.Run()

			Expect(trace).To(Equal([]string{"first", "second", "third"}))
			Expect(result.Tests).To(HaveLen(3))
			Expect(result.Tests[0].Name).To(Equal("first"))
			Expect(result.Tests[2].Name).To(Equal("third"))
		})

		It("should name unnamed tests by their registration position", func() {
			suite, _ := testutils.NewRecordedSuite("naming")
			suite.Test("", testutils.PassingBody)
			suite.Test("named", testutils.PassingBody)
			suite.Test("", testutils.PassingBody)

			result := suite.Run()

			Expect(result.Tests[0].Name).To(Equal("Unnamed Test 0"))
			Expect(result.Tests[1].Name).To(Equal("named"))
			Expect(result.Tests[2].Name).To(Equal("Unnamed Test 2"))
		})

		It("should allow duplicate names", func() {
			suite, _ := testutils.NewRecordedSuite("duplicates")
			suite.Test("same", testutils.PassingBody)
			suite.Test("same", testutils.FailingBody("second of two"))

			result := suite.Run()

			Expect(result.Run).To(Equal(2))
			Expect(result.Tests[0].Status).To(Equal(unitest.StatusPass))
			Expect(result.Tests[1].Status).To(Equal(unitest.StatusFail))
		})

		It("should treat a nil body as a pass", func() {
			suite, _ := testutils.NewRecordedSuite("nilbody")
			suite.Test("does nothing", nil)

			result := suite.Run()

			Expect(result.Failed).To(BeZero())
			Expect(result.Tests[0].Status).To(Equal(unitest.StatusPass))
		})
	})

	Describe("hooks", func() {
		It("should run the before hook first and the after hook last", func() {
			suite, _ := testutils.NewRecordedSuite("hooked")
			var trace []string
			suite.Before(func() { trace = append(trace, "before") })
			suite.After(func() { trace = append(trace, "after") })
			suite.Test("a", func() { trace = append(trace, "a") })
			suite.Test("b", func() { trace = append(trace, "b") })

			suite.Run()

			Expect(trace).To(Equal([]string{"before", "a", "b", "after"}))
		})

		It("should run the after hook even when tests fail", func() {
			suite, _ := testutils.NewRecordedSuite("hooked")
			var trace []string
			suite.After(func() { trace = append(trace, "after") })
			suite.Test("bad", testutils.FailingBody("deliberate"))

			suite.Run()

			Expect(trace).To(Equal([]string{"after"}))
		})

		It("should keep only the last registered hook", func() {
			suite, _ := testutils.NewRecordedSuite("hooked")
			var trace []string
			suite.Before(func() { trace = append(trace, "discarded") })
			suite.Before(func() { trace = append(trace, "replacement") })
			suite.Test("t", testutils.PassingBody)

			suite.Run()

			Expect(trace).To(Equal([]string{"replacement"}))
		})

		It("should reset a hook to a no-op when given nil", func() {
			suite, _ := testutils.NewRecordedSuite("hooked")
			var calls int
			suite.Before(func() { calls++ })
			suite.Before(nil)
			suite.After(nil)
			suite.Test("t", testutils.PassingBody)

			Expect(func() { suite.Run() }).NotTo(Panic())
			Expect(calls).To(BeZero())
		})
	})
})
