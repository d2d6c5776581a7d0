package integration_test

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"

	"github.com/dls-controls/dls-release-tools"
	"github.com/dls-controls/dls-release-tools/check"
	"github.com/dls-controls/dls-release-tools/in"
	"github.com/dls-controls/dls-release-tools/out"
)

var _ = Describe("check, in and out against a release root", func() {
	var (
		err       error
		tmpPath   string
		buildPath string
		source    releasetools.Source
	)

	run := func(path string, request interface{}, args ...string) *gexec.Session {
		stdin := &bytes.Buffer{}
		Expect(json.NewEncoder(stdin).Encode(request)).To(Succeed())

		command := exec.Command(path, args...)
		command.Stdin = stdin

		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).ToNot(HaveOccurred())
		<-session.Exited

		return session
	}

	put := func(release string) out.OutResponse {
		writeRelease(buildPath, release, "EPICS_BASE=/dls_sw/epics/"+release+"\n")

		session := run(outPath, out.OutRequest{
			Source: source,
			Params: out.Params{Directory: release, Release: release},
		}, buildPath)
		Expect(session.ExitCode()).To(Equal(0))

		var response out.OutResponse
		Expect(json.Unmarshal(session.Out.Contents(), &response)).To(Succeed())
		return response
	}

	BeforeEach(func() {
		tmpPath, err = ioutil.TempDir("", "dls_release_integration")
		Expect(err).ToNot(HaveOccurred())

		releaseRoot := filepath.Join(tmpPath, "prod")
		Expect(os.MkdirAll(releaseRoot, 0755)).To(Succeed())

		buildPath = filepath.Join(tmpPath, "build")
		Expect(os.MkdirAll(buildPath, 0755)).To(Succeed())

		source = releasetools.Source{
			ReleaseRoot: releaseRoot,
			Area:        "support",
			Module:      randomModule(),
		}
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tmpPath)).To(Succeed())
	})

	It("rejects a request without a store", func() {
		source.ReleaseRoot = ""

		session := run(checkPath, check.CheckRequest{Source: source})
		Expect(session.ExitCode()).To(Equal(1))
		Expect(session.Err).To(gbytes.Say("please specify the bucket or release_root"))
	})

	It("reports nothing for a module without releases", func() {
		session := run(checkPath, check.CheckRequest{Source: source})
		Expect(session.ExitCode()).To(Equal(0))

		var response check.CheckResponse
		Expect(json.Unmarshal(session.Out.Contents(), &response)).To(Succeed())
		Expect(response).To(BeEmpty())
	})

	It("puts, checks and gets releases in release order", func() {
		response := put("4-5")
		Expect(response.Version).To(Equal(releasetools.Version{
			Path:    "support/" + source.Module + "/4-5.tar.gz",
			Release: "4-5",
		}))
		put("4-21")
		put("4-19")

		session := run(checkPath, check.CheckRequest{Source: source})
		Expect(session.ExitCode()).To(Equal(0))

		var latest check.CheckResponse
		Expect(json.Unmarshal(session.Out.Contents(), &latest)).To(Succeed())
		Expect(latest).To(HaveLen(1))
		Expect(latest[0].Release).To(Equal("4-21"))

		session = run(checkPath, check.CheckRequest{
			Source:  source,
			Version: releasetools.Version{Release: "4-5"},
		})
		Expect(session.ExitCode()).To(Equal(0))

		var newer check.CheckResponse
		Expect(json.Unmarshal(session.Out.Contents(), &newer)).To(Succeed())
		Expect(newer).To(HaveLen(2))
		Expect(newer[0].Release).To(Equal("4-19"))
		Expect(newer[1].Release).To(Equal("4-21"))

		destination := filepath.Join(tmpPath, "get")
		session = run(inPath, in.InRequest{
			Source:  source,
			Version: releasetools.Version{Release: "4-19"},
			Params:  in.Params{Unpack: true},
		}, destination)
		Expect(session.ExitCode()).To(Equal(0))

		var fetched in.InResponse
		Expect(json.Unmarshal(session.Out.Contents(), &fetched)).To(Succeed())
		Expect(fetched.Version.Release).To(Equal("4-19"))

		contents, err := ioutil.ReadFile(filepath.Join(destination, "4-19", "configure", "RELEASE"))
		Expect(err).ToNot(HaveOccurred())
		Expect(string(contents)).To(Equal("EPICS_BASE=/dls_sw/epics/4-19\n"))

		release, err := ioutil.ReadFile(filepath.Join(destination, "release"))
		Expect(err).ToNot(HaveOccurred())
		Expect(string(release)).To(Equal("4-19"))
	})

	It("refuses to overwrite a release", func() {
		put("4-5")

		session := run(outPath, out.OutRequest{
			Source: source,
			Params: out.Params{Directory: "4-5", Release: "4-5"},
		}, buildPath)
		Expect(session.ExitCode()).To(Equal(1))
		Expect(session.Err).To(gbytes.Say("already exists"))
	})
})
