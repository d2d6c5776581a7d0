package integration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/dls-controls/dls-release-tools"
)

var _ = Describe("GCSClient", func() {
	var (
		err       error
		tmpPath   string
		store     releasetools.ReleaseStore
		module    string
		localPath string
	)

	BeforeEach(func() {
		if bucketName == "" {
			Skip("$DLS_RELEASE_BUCKET_NAME is not set")
		}

		store, err = releasetools.NewGCSClient(ioutil.Discard, bucketName, jsonKey)
		Expect(err).ToNot(HaveOccurred())

		tmpPath, err = ioutil.TempDir("", "gcs_client")
		Expect(err).ToNot(HaveOccurred())

		localPath = filepath.Join(tmpPath, "4-5.tar.gz")
		Expect(ioutil.WriteFile(localPath, []byte("release"), 0644)).To(Succeed())

		module = randomModule()
	})

	AfterEach(func() {
		if tmpPath != "" {
			Expect(os.RemoveAll(tmpPath)).To(Succeed())
		}
	})

	It("uploads, lists, downloads and deletes objects", func() {
		objectPath := releasetools.ArchivePath(releasetools.AreaSupport, module, "4-5")

		Expect(store.UploadFile(objectPath, "application/gzip", localPath)).To(Succeed())

		objects, err := store.Objects(releasetools.ModulePrefix(releasetools.AreaSupport, module))
		Expect(err).ToNot(HaveOccurred())
		Expect(objects).To(ConsistOf(objectPath))

		url, err := store.URL(objectPath)
		Expect(err).ToNot(HaveOccurred())
		Expect(url).To(Equal("gs://" + bucketName + "/" + objectPath))

		downloaded := filepath.Join(tmpPath, "downloaded.tar.gz")
		Expect(store.DownloadFile(objectPath, downloaded)).To(Succeed())
		contents, err := ioutil.ReadFile(downloaded)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(contents)).To(Equal("release"))

		Expect(store.DeleteObject(objectPath)).To(Succeed())
		Expect(store.DownloadFile(objectPath, downloaded)).To(MatchError(releasetools.ErrObjectNotFound))
	})
})
