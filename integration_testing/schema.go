package integration_testing

// Schema is the postgres schema of the workouts service.
const Schema = `
CREATE TABLE public.app_user
(
    id              VARCHAR PRIMARY KEY,
    name            VARCHAR NOT NULL,
    phone           VARCHAR NOT NULL DEFAULT '',
    delivery_opt_in BOOLEAN NOT NULL DEFAULT false
);

ALTER TABLE public.app_user OWNER TO postgres;

CREATE TABLE public.workout_plan
(
    id          BIGSERIAL PRIMARY KEY,
    owner_id    VARCHAR     NOT NULL REFERENCES public.app_user (id),
    sessions    JSONB       NOT NULL DEFAULT '[]',
    is_active   BOOLEAN     NOT NULL DEFAULT true,
    is_fallback BOOLEAN     NOT NULL DEFAULT false,
    created_at  TIMESTAMPTZ NOT NULL
);

ALTER TABLE public.workout_plan OWNER TO postgres;
CREATE INDEX ix_workout_plan_owner_active ON public.workout_plan (owner_id) WHERE is_active;

CREATE TABLE public.workout_instance
(
    owner_id         VARCHAR     NOT NULL,
    date             DATE        NOT NULL,
    session_index    INTEGER     NOT NULL,
    title            VARCHAR     NOT NULL,
    rendered_content TEXT        NOT NULL,
    delivery_status  VARCHAR     NOT NULL DEFAULT 'pending',
    approval_status  VARCHAR     NOT NULL DEFAULT 'pending_approval',
    source_plan_id   BIGINT      NOT NULL REFERENCES public.workout_plan (id),
    created_at       TIMESTAMPTZ NOT NULL,
    updated_at       TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (owner_id, date)
);

ALTER TABLE public.workout_instance OWNER TO postgres;
CREATE INDEX ix_workout_instance_plan ON public.workout_instance (source_plan_id);

CREATE TABLE public.points_ledger
(
    id            BIGSERIAL PRIMARY KEY,
    owner_id      VARCHAR     NOT NULL,
    instance_date DATE        NOT NULL,
    points        INTEGER     NOT NULL,
    reason        VARCHAR     NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL,
    UNIQUE (owner_id, instance_date, reason)
);

ALTER TABLE public.points_ledger OWNER TO postgres;

CREATE TABLE public.message_log
(
    id                  UUID PRIMARY KEY,
    owner_id            VARCHAR     NOT NULL DEFAULT '',
    phone               VARCHAR     NOT NULL,
    direction           VARCHAR     NOT NULL,
    message_type        VARCHAR     NOT NULL,
    body                TEXT        NOT NULL,
    provider_message_id VARCHAR     NOT NULL DEFAULT '',
    success             BOOLEAN     NOT NULL,
    error               TEXT        NOT NULL DEFAULT '',
    created_at          TIMESTAMPTZ NOT NULL
);

ALTER TABLE public.message_log OWNER TO postgres;
CREATE INDEX ix_message_log_owner_created_at ON public.message_log (owner_id, created_at);
`
