package releasetools_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/dls-controls/dls-release-tools"
)

var _ = Describe("Release source model", func() {
	Describe("IsValid", func() {
		var source releasetools.Source

		BeforeEach(func() {
			source = releasetools.Source{
				ReleaseRoot: "/dls_sw/prod",
				Area:        "support",
				Module:      "asyn",
			}
		})

		It("accepts a complete source", func() {
			valid, message := source.IsValid()
			Expect(valid).To(BeTrue())
			Expect(message).To(BeEmpty())
		})

		Context("when neither bucket nor release_root is specified", func() {
			JustBeforeEach(func() {
				source.ReleaseRoot = ""
			})

			It("returns false with a useful message", func() {
				valid, message := source.IsValid()
				Expect(valid).To(BeFalse())
				Expect(message).To(Equal("please specify the bucket or release_root"))
			})
		})

		Context("when both bucket and release_root are provided", func() {
			JustBeforeEach(func() {
				source.Bucket = "releases"
			})

			It("returns false with a useful message", func() {
				valid, message := source.IsValid()
				Expect(valid).To(BeFalse())
				Expect(message).To(Equal("please specify either bucket or release_root"))
			})
		})

		DescribeTable("invalid sources",
			func(source releasetools.Source, expectedMessage string) {
				valid, message := source.IsValid()
				Expect(valid).To(BeFalse())
				Expect(message).To(ContainSubstring(expectedMessage))
			},
			Entry("module missing",
				releasetools.Source{Bucket: "releases", Area: "support"},
				"please specify the module",
			),
			Entry("unknown area",
				releasetools.Source{Bucket: "releases", Area: "firmware", Module: "asyn"},
				`unknown area "firmware"`,
			),
			Entry("empty area",
				releasetools.Source{Bucket: "releases", Module: "asyn"},
				`unknown area ""`,
			),
			Entry("unknown version scheme",
				releasetools.Source{Bucket: "releases", Area: "support", Module: "asyn", VersionScheme: "calendar"},
				`unknown version_scheme "calendar"`,
			),
			Entry("bad regexp",
				releasetools.Source{Bucket: "releases", Area: "support", Module: "asyn", Regexp: "(("},
				"regexp is not valid",
			),
		)
	})

	Describe("ReleaseRegexp", func() {
		It("matches the module's archives by default", func() {
			source := releasetools.Source{Area: "python", Module: "dls.pmac"}
			Expect(source.ReleaseRegexp()).To(Equal(`python/dls\.pmac/(?P<version>[^/]+)\.tar\.gz`))
		})

		It("can be overridden", func() {
			source := releasetools.Source{Area: "support", Module: "asyn", Regexp: `legacy/asyn-(.*)\.tgz`}
			Expect(source.ReleaseRegexp()).To(Equal(`legacy/asyn-(.*)\.tgz`))
		})
	})
})
