package jira

import "github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"

type namedField struct {
	Name string `json:"name"`
}

type userField struct {
	DisplayName string `json:"displayName"`
}

type issueResponse struct {
	Key    string `json:"key"`
	Fields struct {
		Summary     string      `json:"summary"`
		Description *string     `json:"description"`
		Status      *namedField `json:"status"`
		Assignee    *userField  `json:"assignee"`
		IssueType   *namedField `json:"issuetype"`
		Priority    *namedField `json:"priority"`
	} `json:"fields"`
}

func (r issueResponse) toDomain() domain.Ticket {
	t := domain.Ticket{
		Key:     r.Key,
		Summary: r.Fields.Summary,
	}
	if r.Fields.Description != nil {
		t.Description = *r.Fields.Description
	}
	if r.Fields.Status != nil {
		t.Status = r.Fields.Status.Name
	}
	if r.Fields.Assignee != nil {
		t.Assignee = r.Fields.Assignee.DisplayName
	}
	if r.Fields.IssueType != nil {
		t.Type = r.Fields.IssueType.Name
	}
	if r.Fields.Priority != nil {
		t.Priority = r.Fields.Priority.Name
	}
	return t
}

type commentRequest struct {
	Body string `json:"body"`
}

type transitionsResponse struct {
	Transitions []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"transitions"`
}

type transitionRef struct {
	ID string `json:"id"`
}

type transitionRequest struct {
	Transition transitionRef `json:"transition"`
}
