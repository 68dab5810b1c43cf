/*
Package domain contains the core domain models of the workflow client.

It defines the entities exchanged between the prompt loop, the session driver and
the external workflow engine. This package is kept pure and free of I/O, following
the same Hexagonal Architecture split as the rest of the module.

# Key Entities

  - Workflow: The graph definition (metadata, entry node and nodes keyed by id).
  - Node: Either a question node (fields + edges) or a terminal node (status).
  - FieldDefinition: One typed question with its validation constraints.
  - Data: The insertion-ordered mapping of field id to validated value.
  - History: The stack of visited node ids used for back-navigation.
  - PromptResult: The outcome of asking one field (a value or a back signal).
*/
package domain
