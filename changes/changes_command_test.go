package changes_test

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/dls-controls/dls-release-tools"
	"github.com/dls-controls/dls-release-tools/archive"
	"github.com/dls-controls/dls-release-tools/fakes"

	. "github.com/dls-controls/dls-release-tools/changes"
)

var _ = Describe("Changes Command", func() {
	var (
		err         error
		tmpPath     string
		workDir     string
		archivePath string
		request     ChangesRequest

		store   *fakes.FakeReleaseStore
		command *ChangesCommand
	)

	writeFile := func(path string, contents string) {
		Expect(os.MkdirAll(filepath.Dir(path), 0755)).To(Succeed())
		Expect(ioutil.WriteFile(path, []byte(contents), 0644)).To(Succeed())
	}

	BeforeEach(func() {
		tmpPath, err = ioutil.TempDir("", "changes_command")
		Expect(err).ToNot(HaveOccurred())

		releaseDir := filepath.Join(tmpPath, "prod", "4-21")
		writeFile(filepath.Join(releaseDir, "Makefile"), "TOP = .\nDIRS += configure\n")
		writeFile(filepath.Join(releaseDir, "configure", "RELEASE"), "EPICS_BASE=/dls_sw/epics/R3.14.12.7/base\n")
		writeFile(filepath.Join(releaseDir, "docs", "old.html"), "<p>old</p>\n")

		archivePath = filepath.Join(tmpPath, "4-21.tar.gz")
		Expect(archive.Pack(releaseDir, archivePath)).To(Succeed())

		workDir = filepath.Join(tmpPath, "work", "asyn")
		writeFile(filepath.Join(workDir, "Makefile"), "TOP = .\nDIRS += configure\n")
		writeFile(filepath.Join(workDir, "configure", "RELEASE"), "EPICS_BASE=/dls_sw/epics/R3.14.12.8/base\n")
		writeFile(filepath.Join(workDir, "src", "drvAsyn.c"), "int main(void) { return 0; }\n")
		writeFile(filepath.Join(workDir, ".git", "HEAD"), "ref: refs/heads/master\n")

		request = ChangesRequest{
			Source: releasetools.Source{
				Bucket: "bucket-name",
				Area:   "support",
				Module: "asyn",
			},
		}

		store = &fakes.FakeReleaseStore{}
		store.ObjectsReturns([]string{
			"support/asyn/4-5.tar.gz",
			"support/asyn/4-21.tar.gz",
			"support/asyn/4-19.tar.gz",
		}, nil)
		store.DownloadFileStub = func(objectPath string, localPath string) error {
			contents, err := ioutil.ReadFile(archivePath)
			if err != nil {
				return err
			}
			return ioutil.WriteFile(localPath, contents, 0644)
		}

		command = NewChangesCommand(store)
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tmpPath)).To(Succeed())
	})

	It("compares against the latest release", func() {
		response, err := command.Run(workDir, request)
		Expect(err).ToNot(HaveOccurred())

		objectPath, _ := store.DownloadFileArgsForCall(0)
		Expect(objectPath).To(Equal("support/asyn/4-21.tar.gz"))
		Expect(response.Version).To(Equal(releasetools.Version{Path: "support/asyn/4-21.tar.gz", Release: "4-21"}))
	})

	It("reports added, removed and modified files", func() {
		response, err := command.Run(workDir, request)
		Expect(err).ToNot(HaveOccurred())

		Expect(response.Files).To(HaveLen(3))

		Expect(response.Files[0].Path).To(Equal("configure/RELEASE"))
		Expect(response.Files[0].Status).To(Equal(StatusModified))
		Expect(response.Files[0].Diff).To(ContainSubstring("--- configure/RELEASE (4-21)"))
		Expect(response.Files[0].Diff).To(ContainSubstring("+++ configure/RELEASE (work)"))
		Expect(response.Files[0].Diff).To(ContainSubstring("-EPICS_BASE=/dls_sw/epics/R3.14.12.7/base"))
		Expect(response.Files[0].Diff).To(ContainSubstring("+EPICS_BASE=/dls_sw/epics/R3.14.12.8/base"))

		Expect(response.Files[1]).To(Equal(FileChange{Path: "docs/old.html", Status: StatusRemoved}))
		Expect(response.Files[2]).To(Equal(FileChange{Path: "src/drvAsyn.c", Status: StatusAdded}))
	})

	It("compares against a requested release", func() {
		request.Version.Release = "4-19"

		response, err := command.Run(workDir, request)
		Expect(err).ToNot(HaveOccurred())

		Expect(store.ObjectsCallCount()).To(Equal(0))
		objectPath, _ := store.DownloadFileArgsForCall(0)
		Expect(objectPath).To(Equal("support/asyn/4-19.tar.gz"))
		Expect(response.Version.Release).To(Equal("4-19"))
	})

	Describe("context lines", func() {
		BeforeEach(func() {
			writeFile(filepath.Join(workDir, "Makefile"), "TOP = ..\nDIRS += configure\n")
		})

		makefileDiff := func(response ChangesResponse) string {
			for _, file := range response.Files {
				if file.Path == "Makefile" {
					return file.Diff
				}
			}
			Fail("Makefile is not reported as changed")
			return ""
		}

		It("shows three lines of context by default", func() {
			response, err := command.Run(workDir, request)
			Expect(err).ToNot(HaveOccurred())
			Expect(makefileDiff(response)).To(ContainSubstring(" DIRS += configure\n"))
		})

		It("shows no context when zero is requested", func() {
			zero := 0
			request.Params.Context = &zero

			response, err := command.Run(workDir, request)
			Expect(err).ToNot(HaveOccurred())

			diff := makefileDiff(response)
			Expect(diff).To(ContainSubstring("-TOP = .\n"))
			Expect(diff).To(ContainSubstring("+TOP = ..\n"))
			Expect(diff).ToNot(ContainSubstring("DIRS += configure"))
		})

		It("rejects a negative context", func() {
			negative := -1
			request.Params.Context = &negative

			_, err := command.Run(workDir, request)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("invalid context value specified: -1"))
		})
	})

	It("reports nothing for an unchanged working copy", func() {
		workDir = filepath.Join(tmpPath, "prod", "4-21")

		response, err := command.Run(workDir, request)
		Expect(err).ToNot(HaveOccurred())
		Expect(response.Files).To(BeEmpty())
	})

	It("fails when the module has no releases", func() {
		store.ObjectsReturns([]string{}, nil)

		_, err := command.Run(workDir, request)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("asyn has no releases to compare against"))
	})

	It("fails when the download fails", func() {
		store.DownloadFileStub = nil
		store.DownloadFileReturns(errors.New("error downloading file"))

		_, err := command.Run(workDir, request)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("error downloading file"))
	})

	It("fails for a missing working copy", func() {
		_, err := command.Run(filepath.Join(tmpPath, "missing"), request)
		Expect(err).To(HaveOccurred())
	})

	It("validates the source", func() {
		request.Source.Module = ""

		_, err := command.Run(workDir, request)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("please specify the module"))
	})
})
