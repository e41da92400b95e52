package sqlinline

const QUpsertUserBySubject = `--sql f0d37c82-6b19-4a45-8e2c-91d5b3f7a604
insert into users(id, sso_subject, email, name, picture, role, created_at, updated_at)
values (gen_random_uuid(), $1::text, $2::text, $3::text, $4::text, $5::text, now(), now())
on conflict (sso_subject) do update set
    email = excluded.email,
    name = excluded.name,
    picture = excluded.picture,
    updated_at = now()
returning id, sso_subject, email, name, picture, role, created_at, updated_at;
`

const QSelectUserByID = `--sql 3a85d1c6-04e9-4f72-b6a0-c28e79d4f153
select id, sso_subject, email, name, picture, role, created_at, updated_at
from users
where id = $1::uuid;
`
