// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

//go:build integration

package pod_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/podward/podward/internal/fetch"
	"github.com/podward/podward/pkg/access"
	"github.com/podward/podward/pkg/solid"
)

// memoryPod is an in-memory Solid server: GET/HEAD serve stored turtle
// documents with their Link headers, PUT replaces the body.
type memoryPod struct {
	mu   sync.Mutex
	docs map[string]*memoryDoc
}

type memoryDoc struct {
	body  string
	links []string
}

func (p *memoryPod) set(path, body string, links ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.docs[path] = &memoryDoc{body: body, links: links}
}

func (p *memoryPod) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	doc, ok := p.docs[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		doc.body = string(body)
		w.WriteHeader(http.StatusNoContent)
	case http.MethodHead, http.MethodGet:
		for _, link := range doc.links {
			w.Header().Add("Link", link)
		}
		w.Header().Set("Content-Type", "text/turtle")
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(doc.body))
		}
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

const (
	acrLink = `<resource.acr>; rel="http://www.w3.org/ns/solid/acp#accessControl"`
	aclLink = `<resource.acl>; rel="acl"`

	aliceWebID = "https://alice.example/profile#me"
	bobWebID   = "https://bob.example/profile#me"

	emptyACR = `
@prefix acp: <http://www.w3.org/ns/solid/acp#> .
<> a acp:AccessControlResource .
`

	emptyACL = ``
)

var _ = Describe("Pod access client", func() {
	var (
		ctx      context.Context
		pod      *memoryPod
		client   *access.Client
		resource string
	)

	BeforeEach(func() {
		ctx = context.Background()
		pod = &memoryPod{docs: map[string]*memoryDoc{}}
		server := httptest.NewServer(pod)
		DeferCleanup(server.Close)

		client = access.NewClient(access.WithFetcher(fetch.New(
			fetch.WithHTTPClient(server.Client()),
			fetch.WithRetries(0),
		)))
		resource = server.URL + "/resource"
	})

	Describe("ACP-governed resources", func() {
		BeforeEach(func() {
			pod.set("/resource", "<> a <http://example.org/Thing> .", acrLink)
			pod.set("/resource.acr", emptyACR)
		})

		It("round-trips a grant through the server", func() {
			got, ok, err := client.SetAgentAccess(ctx, resource, aliceWebID, solid.Access{
				Read:  solid.Granted,
				Write: solid.Granted,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(got.Read).To(Equal(solid.Granted))
			Expect(got.Write).To(Equal(solid.Granted))
			Expect(got.Append).To(Equal(solid.Unset))
		})

		It("keeps grants to different agents independent", func() {
			_, ok, err := client.SetAgentAccess(ctx, resource, aliceWebID, solid.Access{Read: solid.Granted})
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			_, ok, err = client.SetAgentAccess(ctx, resource, bobWebID, solid.Access{Write: solid.Granted})
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			alice, ok := client.AgentAccess(ctx, resource, aliceWebID)
			Expect(ok).To(BeTrue())
			Expect(alice.Read).To(Equal(solid.Granted))
			Expect(alice.Write).To(Equal(solid.Unset))

			bob, ok := client.AgentAccess(ctx, resource, bobWebID)
			Expect(ok).To(BeTrue())
			Expect(bob.Read).To(Equal(solid.Unset))
			Expect(bob.Write).To(Equal(solid.Granted))
		})

		It("lets a deny overwrite an earlier grant", func() {
			_, ok, err := client.SetAgentAccess(ctx, resource, aliceWebID, solid.Access{Read: solid.Granted})
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			got, ok, err := client.SetAgentAccess(ctx, resource, aliceWebID, solid.Access{Read: solid.Denied})
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(got.Read).To(Equal(solid.Denied))
		})

		It("sets control halves independently", func() {
			got, ok, err := client.SetAgentAccess(ctx, resource, aliceWebID, solid.Access{
				ControlRead: solid.Granted,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(got.ControlRead).To(Equal(solid.Granted))
			Expect(got.ControlWrite).To(Equal(solid.Unset))
		})
	})

	Describe("WAC-governed resources", func() {
		BeforeEach(func() {
			pod.set("/resource", "<> a <http://example.org/Thing> .", aclLink)
			pod.set("/resource.acl", emptyACL)
		})

		It("round-trips a grant through the server", func() {
			got, ok, err := client.SetAgentAccess(ctx, resource, aliceWebID, solid.Access{
				Write: solid.Granted,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(got.Write).To(Equal(solid.Granted))
			Expect(got.Append).To(Equal(solid.Granted), "acl:Write implies append")
		})

		It("reads a withdrawn grant back as unset, not denied", func() {
			_, ok, err := client.SetAgentAccess(ctx, resource, aliceWebID, solid.Access{Read: solid.Granted})
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			got, ok, err := client.SetAgentAccess(ctx, resource, aliceWebID, solid.Access{Read: solid.Denied})
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(got.Read).To(Equal(solid.Unset))
		})

		It("refuses to split the control modes", func() {
			_, _, err := client.SetAgentAccess(ctx, resource, aliceWebID, solid.Access{
				ControlRead: solid.Granted,
			})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("scheme transparency", func() {
		It("reports the same public access under either scheme", func() {
			pod.set("/resource", "<> a <http://example.org/Thing> .", acrLink)
			pod.set("/resource.acr", emptyACR)

			acpGot, ok, err := client.SetPublicAccess(ctx, resource, solid.Access{Read: solid.Granted})
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			pod.set("/resource", "<> a <http://example.org/Thing> .", aclLink)
			pod.set("/resource.acl", emptyACL)

			wacGot, ok, err := client.SetPublicAccess(ctx, resource, solid.Access{Read: solid.Granted})
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			Expect(wacGot).To(Equal(acpGot))
		})
	})

	Describe("indeterminate states", func() {
		It("reports not-ok for ungoverned resources", func() {
			pod.set("/resource", "<> a <http://example.org/Thing> .")

			_, ok := client.PublicAccess(ctx, resource)
			Expect(ok).To(BeFalse())
		})

		It("reports not-ok when the resource is missing", func() {
			_, ok := client.AgentAccess(ctx, resource, aliceWebID)
			Expect(ok).To(BeFalse())
		})
	})

	Describe("concurrent readers", func() {
		const goroutines = 20

		It("answers every concurrent reader consistently", func() {
			pod.set("/resource", "<> a <http://example.org/Thing> .", acrLink)
			pod.set("/resource.acr", emptyACR)

			_, ok, err := client.SetAgentAccess(ctx, resource, aliceWebID, solid.Access{Read: solid.Granted})
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			var wg sync.WaitGroup
			results := make([]solid.Access, goroutines)
			oks := make([]bool, goroutines)

			for i := 0; i < goroutines; i++ {
				wg.Add(1)
				go func(idx int) {
					defer GinkgoRecover()
					defer wg.Done()
					results[idx], oks[idx] = client.AgentAccess(ctx, resource, aliceWebID)
				}(i)
			}
			wg.Wait()

			for i := 0; i < goroutines; i++ {
				Expect(oks[i]).To(BeTrue())
				Expect(results[i].Read).To(Equal(solid.Granted))
			}
		})
	})
})
