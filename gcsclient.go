package releasetools

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	oauthgoogle "golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/storage/v1"
	"gopkg.in/cheggaaa/pb.v1"
)

type gcsclient struct {
	storageService *storage.Service
	bucketName     string
	progressOutput io.Writer
}

func NewGCSClient(
	progressOutput io.Writer,
	bucketName string,
	jsonKey string,
) (ReleaseStore, error) {
	var err error
	var storageClient *http.Client
	var userAgent = "dls-release-tools/0.1.0"

	if jsonKey != "" {
		storageJwtConf, err := oauthgoogle.JWTConfigFromJSON([]byte(jsonKey), storage.DevstorageFullControlScope)
		if err != nil {
			return &gcsclient{}, err
		}
		storageClient = storageJwtConf.Client(oauth2.NoContext)
	} else {
		storageClient, err = oauthgoogle.DefaultClient(oauth2.NoContext, storage.DevstorageFullControlScope)
		if err != nil {
			return &gcsclient{}, err
		}
	}

	storageService, err := storage.New(storageClient)
	if err != nil {
		return &gcsclient{}, err
	}
	storageService.UserAgent = userAgent

	return &gcsclient{
		storageService: storageService,
		bucketName:     bucketName,
		progressOutput: progressOutput,
	}, nil
}

func (gcsclient *gcsclient) Objects(prefix string) ([]string, error) {
	var objects []string

	pageToken := ""
	for {
		listCall := gcsclient.storageService.Objects.List(gcsclient.bucketName)
		listCall = listCall.PageToken(pageToken)
		listCall = listCall.Prefix(prefix)
		listCall = listCall.Versions(false)

		page, err := listCall.Do()
		if err != nil {
			return objects, err
		}

		for _, object := range page.Items {
			objects = append(objects, object.Name)
		}

		if page.NextPageToken != "" {
			pageToken = page.NextPageToken
		} else {
			break
		}
	}

	return objects, nil
}

func (gcsclient *gcsclient) DownloadFile(objectPath string, localPath string) error {
	getCall := gcsclient.storageService.Objects.Get(gcsclient.bucketName, objectPath)

	object, err := getCall.Do()
	if err != nil {
		return notFound(err)
	}

	localFile, err := os.Create(localPath)
	if err != nil {
		return err
	}
	defer localFile.Close()

	progress := newProgressBar(gcsclient.progressOutput, int64(object.Size))
	progress.Start()
	defer progress.Finish()

	response, err := getCall.Download()
	if err != nil {
		return notFound(err)
	}
	defer response.Body.Close()

	_, err = io.Copy(localFile, progress.NewProxyReader(response.Body))
	return err
}

func (gcsclient *gcsclient) UploadFile(objectPath string, objectContentType string, localPath string) error {
	stat, err := os.Stat(localPath)
	if err != nil {
		return err
	}

	localFile, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer localFile.Close()

	progress := newProgressBar(gcsclient.progressOutput, stat.Size())
	progress.Start()
	defer progress.Finish()

	object := &storage.Object{
		Name:        objectPath,
		ContentType: objectContentType,
	}

	_, err = gcsclient.storageService.Objects.Insert(gcsclient.bucketName, object).
		Media(progress.NewProxyReader(localFile)).
		Do()
	return err
}

func (gcsclient *gcsclient) URL(objectPath string) (string, error) {
	_, err := gcsclient.storageService.Objects.Get(gcsclient.bucketName, objectPath).Do()
	if err != nil {
		return "", notFound(err)
	}

	return fmt.Sprintf("gs://%s/%s", gcsclient.bucketName, objectPath), nil
}

func (gcsclient *gcsclient) DeleteObject(objectPath string) error {
	err := gcsclient.storageService.Objects.Delete(gcsclient.bucketName, objectPath).Do()
	if err != nil {
		return notFound(err)
	}

	return nil
}

func notFound(err error) error {
	if apiErr, ok := err.(*googleapi.Error); ok && apiErr.Code == http.StatusNotFound {
		return ErrObjectNotFound
	}

	return err
}

func newProgressBar(output io.Writer, total int64) *pb.ProgressBar {
	progress := pb.New64(total)

	progress.Output = output
	progress.ShowSpeed = true
	progress.Units = pb.U_BYTES
	progress.NotPrint = true

	return progress.SetWidth(80)
}
